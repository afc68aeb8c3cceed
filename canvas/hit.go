package canvas

import (
	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

type HitKind int8

const (
	HitNone HitKind = iota
	HitNode
	HitWaypoint
	// HitLabelHandle is the synthesized handle of an edge with no override
	// yet; dragging it creates the edge's first waypoint.
	HitLabelHandle
)

// Hit describes what sits under a pointer position. ID names the node
// (HitNode) or edge (HitWaypoint, HitLabelHandle); Index is the waypoint
// index, -1 otherwise.
type Hit struct {
	Kind  HitKind
	ID    string
	Index int
}

// HitTest resolves what a pointer-down lands on, so the host can route the
// event to StartNodeDrag, StartWaypointDrag, or a reset. Handles render on
// top of node bodies and win overlaps; point handles get a slop of
// SnapTolerance around them. An unavailable transform misses everything.
func (c *Canvas) HitTest(screen *geo.Point) Hit {
	miss := Hit{Kind: HitNone, Index: -1}
	p, ok := c.toDiagram(screen)
	if !ok {
		return miss
	}

	slop := c.cfg.SnapTolerance
	for _, e := range c.RenderableEdges() {
		wps, hasOverride := c.EdgeWaypoints(e)
		if hasOverride {
			for i, wp := range wps {
				if geo.NewBoxFromCenter(wp, 0, 0).Expand(slop).Contains(p) {
					return Hit{Kind: HitWaypoint, ID: e.ID, Index: i}
				}
			}
			continue
		}
		if h := c.LabelHandle(e); h != nil {
			if geo.NewBoxFromCenter(h, 0, 0).Expand(slop).Contains(p) {
				return Hit{Kind: HitLabelHandle, ID: e.ID, Index: -1}
			}
		}
	}

	for _, n := range c.d.Nodes {
		if c.NodeBox(n).Contains(p) {
			return Hit{Kind: HitNode, ID: n.ID, Index: -1}
		}
	}
	return miss
}
