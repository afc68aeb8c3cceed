package canvas

import (
	"context"

	"cdr.dev/slog"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/geo"
	"github.com/RohanAdwankar/oxdraw/lib/go2"
	"github.com/RohanAdwankar/oxdraw/lib/log"
)

type dragKind int8

const (
	dragNode dragKind = iota + 1
	dragWaypoint
)

// dragState is the exclusive drag owner: it exists from pointer-down to
// pointer-up/cancel and models pointer capture. While it is non-nil every
// other drag-start event is ignored.
type dragState struct {
	kind    dragKind
	session uuid.UUID

	// id names the node (dragNode) or edge (dragWaypoint).
	id string
	// index is the dragged point's position within the edge draft list.
	index int

	// offset is pointer minus grabbed point at pointer-down, so the point
	// doesn't jump under the cursor.
	offset geo.Vector

	moved bool
}

// StartNodeDrag begins dragging a node. Returns false, changing nothing,
// when another drag owns the pointer, the node is unknown, or the screen
// transform is unavailable.
func (c *Canvas) StartNodeDrag(ctx context.Context, id string, screen *geo.Point) bool {
	if c.drag != nil {
		return false
	}
	n := c.d.GetNode(id)
	if n == nil {
		return false
	}
	pointer, ok := c.toDiagram(screen)
	if !ok {
		return false
	}

	center := c.NodeCenter(n)
	c.drag = &dragState{
		kind:    dragNode,
		session: uuid.New(),
		id:      id,
		offset:  center.VectorTo(pointer),
	}
	c.nodeDrafts[id] = center.Copy()
	log.Debug(ctx, "node drag started", slog.F("session", c.drag.session), slog.F("node", id))
	return true
}

// StartWaypointDrag begins dragging an edge waypoint. index addresses a
// point in the edge's existing override; pass index -1 to grab the
// synthesized handle of an edge with no override yet, which seeds a
// single-point draft at the handle's current position.
func (c *Canvas) StartWaypointDrag(ctx context.Context, edgeID string, index int, screen *geo.Point) bool {
	if c.drag != nil {
		return false
	}
	e := c.d.GetEdge(edgeID)
	if e == nil || !c.renderable(e) {
		return false
	}
	pointer, ok := c.toDiagram(screen)
	if !ok {
		return false
	}

	wps, hasOverride := c.EdgeWaypoints(e)
	var draft geo.Points
	if hasOverride {
		if index < 0 || index >= len(wps) {
			return false
		}
		draft = wps.Copy()
	} else {
		// a positive index is a stale reference to a handle that no longer
		// exists, e.g. from an event queued across a reload
		if index > 0 {
			return false
		}
		handle := c.LabelHandle(e)
		if handle == nil {
			return false
		}
		draft = geo.Points{handle.Copy()}
		index = 0
	}

	c.drag = &dragState{
		kind:    dragWaypoint,
		session: uuid.New(),
		id:      edgeID,
		index:   index,
		offset:  draft[index].VectorTo(pointer),
	}
	c.edgeDrafts[edgeID] = draft
	log.Debug(ctx, "waypoint drag started",
		slog.F("session", c.drag.session), slog.F("edge", edgeID), slog.F("index", index))
	return true
}

// MovePointer advances the active drag to a new pointer position, running
// alignment and grid snapping and updating the draft layer and guides.
// No-op without an active drag or a usable transform.
func (c *Canvas) MovePointer(ctx context.Context, screen *geo.Point) {
	if c.drag == nil {
		return
	}
	pointer, ok := c.toDiagram(screen)
	if !ok {
		return
	}
	proposed := pointer.AddVector(c.drag.offset.Multiply(-1))

	switch c.drag.kind {
	case dragNode:
		n := c.d.GetNode(c.drag.id)
		if n == nil {
			return
		}
		box := c.NodeBox(n)
		mover := geo.NewBoxFromCenter(proposed, box.Width, box.Height)
		snapped, guides := c.resolveProposed(c.drag.id, mover)
		c.nodeDrafts[c.drag.id] = snapped
		c.guides = guides
	case dragWaypoint:
		draft := c.edgeDrafts[c.drag.id]
		if c.drag.index >= len(draft) {
			return
		}
		mover := geo.NewBoxFromCenter(proposed, 0, 0)
		snapped, guides := c.resolveProposed(waypointHandleID(c.drag.id, c.drag.index), mover)
		draft[c.drag.index] = snapped
		c.guides = guides
	}
	c.drag.moved = true
	c.refitViewport()
}

// EndDrag releases the pointer and commits the manipulation. A drag that
// never moved commits nothing. Draft state and guides are cleared on every
// path out.
func (c *Canvas) EndDrag(ctx context.Context) {
	if c.drag == nil {
		return
	}
	d := c.drag
	u := diagram.NewLayoutUpdate()
	u.Session = d.session.String()

	if d.moved {
		switch d.kind {
		case dragNode:
			if p, ok := c.nodeDrafts[d.id]; ok {
				c.buildNodeCommit(u, d.id, p)
			}
		case dragWaypoint:
			if pts, ok := c.edgeDrafts[d.id]; ok {
				if len(pts) == 0 {
					u.ClearEdgePoints(d.id)
				} else {
					u.SetEdgePoints(d.id, pts)
				}
			}
		}
	}

	log.Debug(ctx, "drag ended",
		slog.F("session", d.session), slog.F("moved", d.moved))
	c.resetManipulation()
	c.commit(ctx, u)
	c.refitViewport()
}

// CancelDrag discards the active drag without committing, e.g. when the
// input device is lost. Leaves no residual state.
func (c *Canvas) CancelDrag(ctx context.Context) {
	if c.drag == nil {
		return
	}
	log.Debug(ctx, "drag cancelled", slog.F("session", c.drag.session))
	c.resetManipulation()
	c.refitViewport()
}

// buildNodeCommit records the final node position, collapsing back to the
// automatic placement when it lands within epsilon of it, so near-duplicate
// overrides are never persisted.
func (c *Canvas) buildNodeCommit(u *diagram.LayoutUpdate, id string, p *geo.Point) {
	n := c.d.GetNode(id)
	if n == nil {
		return
	}
	if n.AutoPosition != nil && p.DistanceTo(n.AutoPosition) <= c.cfg.CollapseEpsilon {
		u.ClearNodePosition(id)
		return
	}
	u.SetNodePosition(id, p)
}

// NudgeSelected moves the selected node by (dx, dy) steps of the fine nudge
// unit, or of the grid with coarse set, committing immediately. Each nudge
// is atomic: no draft lingers between keystrokes and any guides are
// cleared. Inactive while a drag owns the pointer or nothing is selected.
func (c *Canvas) NudgeSelected(ctx context.Context, dx, dy float64, coarse bool) bool {
	if c.drag != nil || c.selected == "" {
		return false
	}
	n := c.d.GetNode(c.selected)
	if n == nil {
		return false
	}

	step := c.cfg.NudgeStep
	if coarse {
		step = c.cfg.GridSize
	}
	p := c.NodeCenter(n).AddVector(geo.NewVector(dx*step, dy*step))
	if coarse {
		p = geo.NewPoint(c.snapToGrid(p.X), c.snapToGrid(p.Y))
	}

	c.guides = Guides{}
	u := diagram.NewLayoutUpdate()
	c.buildNodeCommit(u, c.selected, p)
	c.commit(ctx, u)
	return true
}

// InsertWaypoint handles a double-click on an edge body: the click point is
// projected onto the nearest route segment and inserted right after that
// segment's start, committing immediately. No-op during a drag.
func (c *Canvas) InsertWaypoint(ctx context.Context, edgeID string, screen *geo.Point) bool {
	if c.drag != nil {
		return false
	}
	e := c.d.GetEdge(edgeID)
	if e == nil || !c.renderable(e) {
		return false
	}
	p, ok := c.toDiagram(screen)
	if !ok {
		return false
	}
	route := c.EdgeRoute(e)
	seg := route.NearestSegment(p)
	if seg < 0 {
		return false
	}

	wps, hasOverride := c.EdgeWaypoints(e)
	var next geo.Points
	if !hasOverride {
		next = geo.Points{p.Copy()}
	} else {
		// Segment seg starts at route[seg]; route[0] is the from endpoint,
		// so inserting after the segment start lands at override index seg.
		at := go2.Min(seg, len(wps))
		next = slices.Insert(wps.Copy(), at, p.Copy())
	}

	u := diagram.NewLayoutUpdate()
	u.SetEdgePoints(edgeID, next)
	c.commit(ctx, u)
	return true
}

// ResetNode handles a double-click on a node: its manual placement is
// cleared and it returns to automatic layout. No-op during a drag.
func (c *Canvas) ResetNode(ctx context.Context, id string) bool {
	if c.drag != nil {
		return false
	}
	n := c.d.GetNode(id)
	if n == nil || !n.HasOverride() {
		return false
	}
	u := diagram.NewLayoutUpdate()
	u.ClearNodePosition(id)
	c.commit(ctx, u)
	return true
}

// ResetEdge handles a double-click on a waypoint handle: all manual
// waypoints of the edge are cleared and the upstream route returns.
// No-op during a drag.
func (c *Canvas) ResetEdge(ctx context.Context, id string) bool {
	if c.drag != nil {
		return false
	}
	e := c.d.GetEdge(id)
	if e == nil || !e.HasOverride() {
		return false
	}
	u := diagram.NewLayoutUpdate()
	u.ClearEdgePoints(id)
	c.commit(ctx, u)
	return true
}
