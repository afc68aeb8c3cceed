package canvas

import (
	"math"
	"strings"

	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/geo"
	"github.com/RohanAdwankar/oxdraw/lib/go2"
)

// EdgeRoute builds the rendered polyline for an edge. With an override in
// effect the route is [from, waypoints..., to], anchored at the endpoints'
// current effective positions. Without one, the upstream rendered points are
// used verbatim; they already encode the upstream routing around obstacles.
// Edges with a missing endpoint return nil.
func (c *Canvas) EdgeRoute(e *diagram.Edge) geo.Route {
	if !c.renderable(e) {
		return nil
	}
	wps, ok := c.EdgeWaypoints(e)
	if !ok {
		return geo.Route(e.RenderedPoints)
	}
	from := c.NodeCenter(c.d.GetNode(e.From))
	to := c.NodeCenter(c.d.GetNode(e.To))

	route := make(geo.Route, 0, len(wps)+2)
	route = append(route, from)
	route = append(route, wps...)
	route = append(route, to)
	return route
}

// LabelHandle is the single anchor point of an edge: where its label sits
// and, when no override exists yet, where the synthesized drag handle is
// rendered.
//
// With exactly one waypoint the handle is that waypoint. With several it is
// the waypoint closest to the centroid of the full route. Without an
// override the handle is synthesized from the upstream route: the midpoint
// of a two-point route, or the median interior point of a longer one.
func (c *Canvas) LabelHandle(e *diagram.Edge) *geo.Point {
	route := c.EdgeRoute(e)
	if len(route) < 2 {
		return nil
	}
	wps, ok := c.EdgeWaypoints(e)
	if !ok {
		if len(route) == 2 {
			return route[0].Interpolate(route[1], 0.5)
		}
		return route.MedianInterior()
	}
	if len(wps) == 1 {
		return wps[0]
	}

	centroid := geo.Points(route).Centroid()
	best := wps[0]
	bestDist := math.Inf(1)
	for _, p := range wps {
		if d := p.DistanceTo(centroid); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// LabelBox estimates the label's bounding box, centered on the label
// handle. The estimate only needs to be monotonic in text length; it drives
// background-box rendering and viewport fitting, not typography.
func (c *Canvas) LabelBox(e *diagram.Edge) *geo.Box {
	if e.Label == "" {
		return nil
	}
	anchor := c.LabelHandle(e)
	if anchor == nil {
		return nil
	}
	w, h := c.estimateLabelSize(e.Label)
	return geo.NewBoxFromCenter(anchor, w, h)
}

func (c *Canvas) estimateLabelSize(text string) (w, h float64) {
	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		longest = go2.Max(longest, len([]rune(line)))
	}
	w = go2.Max(c.cfg.LabelMinWidth, float64(longest)*c.cfg.LabelCharWidth)
	h = go2.Max(c.cfg.LabelMinHeight, float64(len(lines))*c.cfg.LabelLineHeight)
	return w, h
}
