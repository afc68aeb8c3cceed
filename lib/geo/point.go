package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	if p == nil {
		return nil
	}
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) DistanceTo(other *Point) float64 {
	return EuclideanDistance(p.X, p.Y, other.X, other.Y)
}

// Moves the given point by Vector
func (start *Point) AddVector(v Vector) *Point {
	return start.ToVector().Add(v).ToPoint()
}

// Creates a Vector of the size between start and endpoint, pointing to endpoint
func (start *Point) VectorTo(endpoint *Point) Vector {
	return endpoint.ToVector().Minus(start.ToVector())
}

// Creates a Vector pointing to point
func (endpoint *Point) ToVector() Vector {
	return []float64{endpoint.X, endpoint.Y}
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// https://stackoverflow.com/questions/849211/shortest-distance-between-a-point-and-a-line-segment
func (p *Point) DistanceToSegment(a, b *Point) float64 {
	dx := p.X - a.X
	dy := p.Y - a.Y
	sx := b.X - a.X
	sy := b.Y - a.Y

	lenSq := (sx * sx) + (sy * sy)

	t := -1.0
	if lenSq != 0 {
		t = ((dx * sx) + (dy * sy)) / lenSq
	}

	var nearestX, nearestY float64
	if t < 0.0 {
		nearestX = a.X
		nearestY = a.Y
	} else if t > 1.0 {
		nearestX = b.X
		nearestY = b.Y
	} else {
		nearestX = a.X + (t * sx)
		nearestY = a.Y + (t * sy)
	}

	return math.Sqrt((p.X-nearestX)*(p.X-nearestX) + (p.Y-nearestY)*(p.Y-nearestY))
}

// point t% of the way between a and b
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

type Points []*Point

func (ps Points) Copy() Points {
	if ps == nil {
		return nil
	}
	out := make(Points, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Copy())
	}
	return out
}

func (ps Points) Equals(other Points) bool {
	if len(ps) != len(other) {
		return false
	}
	for i := range ps {
		if !ps[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Centroid is the arithmetic mean of the points. Callers guarantee len > 0.
func (ps Points) Centroid() *Point {
	sumX := 0.
	sumY := 0.
	for _, p := range ps {
		sumX += p.X
		sumY += p.Y
	}
	return NewPoint(sumX/float64(len(ps)), sumY/float64(len(ps)))
}
