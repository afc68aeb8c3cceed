package canvas

import (
	"math"

	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

type Axis int8

const (
	// AxisVertical guides snap the x coordinate; AxisHorizontal the y.
	AxisVertical Axis = iota
	AxisHorizontal
)

type GuideKind int8

const (
	GuideEdge GuideKind = iota
	GuideCenter
)

// Guide is one alignment line to display while dragging. Position is the
// matched line's coordinate on the snapped axis; Start and End span the
// union of the mover's and target's footprints on the perpendicular axis.
type Guide struct {
	Axis     Axis
	Position float64
	Start    float64
	End      float64
	Kind     GuideKind
	SourceID string
	TargetID string
}

// Guides holds at most one guide per axis.
type Guides struct {
	Vertical   *Guide
	Horizontal *Guide
}

// axisSnap is the outcome of alignment on one axis: the snapped center
// coordinate and the guide that produced it.
type axisSnap struct {
	center float64
	guide  *Guide
}

// alignLine is one candidate line of a box on one axis.
type alignLine struct {
	pos  float64
	kind GuideKind
}

func verticalLines(b *geo.Box) [3]alignLine {
	return [3]alignLine{
		{b.Left(), GuideEdge},
		{b.Right(), GuideEdge},
		{b.Center().X, GuideCenter},
	}
}

func horizontalLines(b *geo.Box) [3]alignLine {
	return [3]alignLine{
		{b.Top(), GuideEdge},
		{b.Bottom(), GuideEdge},
		{b.Center().Y, GuideCenter},
	}
}

// align matches the moving footprint against every other handle and returns
// the best qualifying candidate per axis, or nil for an axis with none.
// Candidates pair like with like: left against left, right against right,
// center against center (top/bottom/center horizontally). The smallest
// absolute offset wins; ties keep the first candidate encountered. Runs on
// every pointer-move tick; a linear scan is fine at diagram scale.
func (c *Canvas) align(moverID string, mover *geo.Box, others []Handle) (v, h *axisSnap) {
	var bestV, bestH float64

	moverV := verticalLines(mover)
	moverH := horizontalLines(mover)
	moverCenter := mover.Center()

	for _, other := range others {
		if other.ID == moverID {
			continue
		}

		otherV := verticalLines(other.Box)
		for i := range moverV {
			offset := math.Abs(moverV[i].pos - otherV[i].pos)
			if offset > c.cfg.SnapTolerance {
				continue
			}
			if v != nil && offset >= bestV {
				continue
			}
			bestV = offset
			v = &axisSnap{
				center: otherV[i].pos + (moverCenter.X - moverV[i].pos),
				guide: &Guide{
					Axis:     AxisVertical,
					Position: otherV[i].pos,
					Start:    math.Min(mover.Top(), other.Box.Top()),
					End:      math.Max(mover.Bottom(), other.Box.Bottom()),
					Kind:     moverV[i].kind,
					SourceID: moverID,
					TargetID: other.ID,
				},
			}
		}

		otherH := horizontalLines(other.Box)
		for i := range moverH {
			offset := math.Abs(moverH[i].pos - otherH[i].pos)
			if offset > c.cfg.SnapTolerance {
				continue
			}
			if h != nil && offset >= bestH {
				continue
			}
			bestH = offset
			h = &axisSnap{
				center: otherH[i].pos + (moverCenter.Y - moverH[i].pos),
				guide: &Guide{
					Axis:     AxisHorizontal,
					Position: otherH[i].pos,
					Start:    math.Min(mover.Left(), other.Box.Left()),
					End:      math.Max(mover.Right(), other.Box.Right()),
					Kind:     moverH[i].kind,
					SourceID: moverID,
					TargetID: other.ID,
				},
			}
		}
	}
	return v, h
}

// snapToGrid quantizes a coordinate to the configured grid. Only applied to
// an axis the alignment engine left unsnapped, and unconditionally to
// coarse keyboard nudges.
func (c *Canvas) snapToGrid(v float64) float64 {
	return geo.RoundToNearest(v, c.cfg.GridSize)
}

// resolveProposed turns a raw proposed center into the final draft position:
// alignment per axis first, grid quantization on whatever alignment left
// alone. The returned guides describe the matched lines, nil on axes that
// fell through to the grid.
func (c *Canvas) resolveProposed(moverID string, mover *geo.Box) (*geo.Point, Guides) {
	v, h := c.align(moverID, mover, c.handles())

	center := mover.Center()
	out := geo.NewPoint(c.snapToGrid(center.X), c.snapToGrid(center.Y))
	var guides Guides
	if v != nil {
		out.X = v.center
		guides.Vertical = v.guide
	}
	if h != nil {
		out.Y = h.center
		guides.Horizontal = h.guide
	}
	return out, guides
}
