package canvas

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

// viewport tracks the displayed bounding box and the box it is easing
// toward. The host's frame clock drives Step; a geometry change mid-flight
// retargets the animation without resetting its progress.
type viewport struct {
	displayed *geo.Box
	target    *geo.Box
}

// ContentBounds computes the box enclosing all current geometry: node
// footprints, full edge routes, waypoint handles, and label boxes, padded
// by the configured margin. Nil for an empty diagram.
func (c *Canvas) ContentBounds() *geo.Box {
	var bounds *geo.Box
	for _, n := range c.d.Nodes {
		bounds = bounds.Union(c.NodeBox(n))
	}
	for _, e := range c.d.Edges {
		if !c.renderable(e) {
			continue
		}
		bounds = bounds.Union(c.EdgeRoute(e).GetBoundingBox())
		if wps, ok := c.EdgeWaypoints(e); ok {
			for _, p := range wps {
				bounds = bounds.UnionPoint(p)
			}
		}
		bounds = bounds.Union(c.LabelBox(e))
	}
	if bounds == nil {
		return nil
	}
	return bounds.Expand(c.cfg.FitPadding)
}

// refitViewport retargets the smoothing pass at the current content bounds.
// Called after every geometry change.
func (c *Canvas) refitViewport() {
	c.viewport.target = c.ContentBounds()
	if c.viewport.displayed == nil {
		// First fit has nothing to ease from; lock on immediately.
		c.viewport.displayed = c.viewport.target.Copy()
	}
}

// Viewport is the box the host should display right now.
func (c *Canvas) Viewport() *geo.Box {
	return c.viewport.displayed
}

// ViewportSettled reports whether the displayed box has converged on the
// target, without advancing the animation.
func (c *Canvas) ViewportSettled() bool {
	target := c.viewport.target
	if target == nil {
		return true
	}
	if c.viewport.displayed == nil {
		return false
	}
	return c.withinSmoothEpsilon(c.viewport.displayed, target)
}

// ViewportStep advances the displayed box toward the target by one
// smoothing tick: new = old + factor x (target - old) on each of the four
// bounding dimensions. Once every dimension is within epsilon the box locks
// exactly onto the target. Returns true while further ticks are needed, so
// the host keeps its animation loop alive exactly as long as necessary.
// Idempotent once settled.
func (c *Canvas) ViewportStep() bool {
	target := c.viewport.target
	if target == nil {
		return false
	}
	if c.viewport.displayed == nil {
		c.viewport.displayed = target.Copy()
		return false
	}
	d := c.viewport.displayed

	if c.withinSmoothEpsilon(d, target) {
		c.viewport.displayed = target.Copy()
		return false
	}

	factor := c.cfg.SmoothFactor
	d.TopLeft.X += factor * (target.TopLeft.X - d.TopLeft.X)
	d.TopLeft.Y += factor * (target.TopLeft.Y - d.TopLeft.Y)
	d.Width += factor * (target.Width - d.Width)
	d.Height += factor * (target.Height - d.Height)
	return true
}

func (c *Canvas) withinSmoothEpsilon(a, b *geo.Box) bool {
	eps := c.cfg.SmoothEpsilon
	return scalar.EqualWithinAbs(a.TopLeft.X, b.TopLeft.X, eps) &&
		scalar.EqualWithinAbs(a.TopLeft.Y, b.TopLeft.Y, eps) &&
		scalar.EqualWithinAbs(a.Width, b.Width, eps) &&
		scalar.EqualWithinAbs(a.Height, b.Height, eps)
}
