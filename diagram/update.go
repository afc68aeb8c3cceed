package diagram

import (
	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

// EdgeOverride is the persisted waypoint list for one edge.
type EdgeOverride struct {
	Points geo.Points `json:"points"`
}

// LayoutUpdate is one outbound commit to the persistence service.
// A nil map value clears that element's override; a non-nil value sets it.
// Session identifies the interaction that produced the commit, so service
// logs can be correlated with client-side drag traces.
type LayoutUpdate struct {
	Session string                   `json:"session,omitempty"`
	Nodes   map[string]*geo.Point    `json:"nodes,omitempty"`
	Edges   map[string]*EdgeOverride `json:"edges,omitempty"`
}

func NewLayoutUpdate() *LayoutUpdate {
	return &LayoutUpdate{
		Nodes: map[string]*geo.Point{},
		Edges: map[string]*EdgeOverride{},
	}
}

// SetNodePosition records a manual node placement.
func (u *LayoutUpdate) SetNodePosition(id string, p *geo.Point) {
	u.Nodes[id] = p.Copy()
}

// ClearNodePosition collapses a node back to its automatic placement.
func (u *LayoutUpdate) ClearNodePosition(id string) {
	u.Nodes[id] = nil
}

// SetEdgePoints records a manual waypoint list for an edge.
func (u *LayoutUpdate) SetEdgePoints(id string, pts geo.Points) {
	u.Edges[id] = &EdgeOverride{Points: pts.Copy()}
}

// ClearEdgePoints collapses an edge back to its automatic route.
func (u *LayoutUpdate) ClearEdgePoints(id string) {
	u.Edges[id] = nil
}

func (u *LayoutUpdate) IsEmpty() bool {
	return len(u.Nodes) == 0 && len(u.Edges) == 0
}

// Apply folds the update into an in-memory snapshot, mirroring what the
// persistence service does server-side. The engine applies commits locally
// so interaction never waits on the service round trip.
func (u *LayoutUpdate) Apply(d *Diagram) {
	for id, p := range u.Nodes {
		n := d.GetNode(id)
		if n == nil {
			continue
		}
		n.OverridePosition = p.Copy()
	}
	for id, o := range u.Edges {
		e := d.GetEdge(id)
		if e == nil {
			continue
		}
		if o == nil || len(o.Points) == 0 {
			e.OverridePoints = nil
		} else {
			e.OverridePoints = o.Points.Copy()
		}
	}
}
