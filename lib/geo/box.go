package geo

import (
	"fmt"
	"math"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewBoxFromCenter builds a box of the given size centered on c.
func NewBoxFromCenter(c *Point, width, height float64) *Box {
	return &Box{
		TopLeft: NewPoint(c.X-width/2, c.Y-height/2),
		Width:   width,
		Height:  height,
	}
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) Left() float64   { return b.TopLeft.X }
func (b *Box) Right() float64  { return b.TopLeft.X + b.Width }
func (b *Box) Top() float64    { return b.TopLeft.Y }
func (b *Box) Bottom() float64 { return b.TopLeft.Y + b.Height }

func (b *Box) Contains(p *Point) bool {
	return b.Left() <= p.X && p.X <= b.Right() &&
		b.Top() <= p.Y && p.Y <= b.Bottom()
}

// Expand grows the box by pad on every side.
func (b *Box) Expand(pad float64) *Box {
	return NewBox(
		NewPoint(b.TopLeft.X-pad, b.TopLeft.Y-pad),
		b.Width+2*pad,
		b.Height+2*pad,
	)
}

// Union returns the smallest box enclosing both b and other.
// Either side may be nil, in which case the other is returned as is.
func (b *Box) Union(other *Box) *Box {
	if b == nil {
		return other.Copy()
	}
	if other == nil {
		return b.Copy()
	}
	minX := math.Min(b.Left(), other.Left())
	minY := math.Min(b.Top(), other.Top())
	maxX := math.Max(b.Right(), other.Right())
	maxY := math.Max(b.Bottom(), other.Bottom())
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

// UnionPoint returns the smallest box enclosing both b and p.
func (b *Box) UnionPoint(p *Point) *Box {
	return b.Union(NewBox(p.Copy(), 0, 0))
}

func (b *Box) Equals(other *Box) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.TopLeft.Equals(other.TopLeft) && b.Width == other.Width && b.Height == other.Height
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
