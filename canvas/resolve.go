package canvas

import (
	"fmt"

	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

// Effective geometry resolution. Strict precedence, never blended:
// draft > persisted override > upstream rendered value.

// NodeCenter resolves a node's single effective position.
func (c *Canvas) NodeCenter(n *diagram.Node) *geo.Point {
	if p, ok := c.nodeDrafts[n.ID]; ok {
		return p
	}
	if n.OverridePosition != nil {
		return n.OverridePosition
	}
	return n.RenderedPosition
}

// NodeBox is the node's footprint centered on its effective position.
// Nodes without a snapshot size get the configured fallback.
func (c *Canvas) NodeBox(n *diagram.Node) *geo.Box {
	w, h := n.Width, n.Height
	if w <= 0 {
		w = c.cfg.NodeWidth
	}
	if h <= 0 {
		h = c.cfg.NodeHeight
	}
	return geo.NewBoxFromCenter(c.NodeCenter(n), w, h)
}

// EdgeWaypoints resolves an edge's interior waypoints. ok is true when the
// edge has an override in effect (draft or persisted, length > 0).
func (c *Canvas) EdgeWaypoints(e *diagram.Edge) (geo.Points, bool) {
	if pts, ok := c.edgeDrafts[e.ID]; ok {
		return pts, len(pts) > 0
	}
	return e.OverridePoints, len(e.OverridePoints) > 0
}

// renderable filters edges whose endpoint nodes are missing from the
// snapshot. Diagrams may be transiently inconsistent during a reload, so
// this is not an error.
func (c *Canvas) renderable(e *diagram.Edge) bool {
	return c.d.GetNode(e.From) != nil && c.d.GetNode(e.To) != nil
}

// RenderableEdges returns the edges whose endpoints both resolve.
func (c *Canvas) RenderableEdges() []*diagram.Edge {
	out := make([]*diagram.Edge, 0, len(c.d.Edges))
	for _, e := range c.d.Edges {
		if c.renderable(e) {
			out = append(out, e)
		}
	}
	return out
}

// Handle is one draggable point: a node (with its footprint) or an edge
// waypoint (zero-size). Handles form the universe the alignment engine
// matches against and contribute to viewport fitting.
type Handle struct {
	ID     string
	Center *geo.Point
	Box    *geo.Box
}

func waypointHandleID(edgeID string, i int) string {
	return fmt.Sprintf("%s#%d", edgeID, i)
}

// handles enumerates every node center and every resolved edge waypoint.
// Edge endpoints are not handles; they follow their nodes.
func (c *Canvas) handles() []Handle {
	var out []Handle
	for _, n := range c.d.Nodes {
		out = append(out, Handle{
			ID:     n.ID,
			Center: c.NodeCenter(n),
			Box:    c.NodeBox(n),
		})
	}
	for _, e := range c.d.Edges {
		if !c.renderable(e) {
			continue
		}
		wps, ok := c.EdgeWaypoints(e)
		if !ok {
			continue
		}
		for i, p := range wps {
			out = append(out, Handle{
				ID:     waypointHandleID(e.ID, i),
				Center: p,
				Box:    geo.NewBoxFromCenter(p, 0, 0),
			})
		}
	}
	return out
}
