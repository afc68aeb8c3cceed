// Package canvas implements the interactive layout-reconciliation and
// geometry engine of the diagram editor.
//
// The engine merges the upstream auto layout with persisted manual overrides
// and in-progress drag state, computes alignment guidance while the user
// drags, routes edges and places their labels, and keeps the viewport fitted
// to the evolving geometry. It neither computes the initial layout nor
// persists anything itself: snapshots arrive whole from the layout service,
// and commits are handed to a Sink.
//
// Everything runs on the caller's event loop. Pointer, keyboard, and
// animation-tick entry points are plain synchronous methods; the exclusive
// drag owner rule means at most one manipulation mutates draft state at a
// time.
package canvas

import (
	"context"

	"cdr.dev/slog"
	"github.com/google/uuid"

	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/geo"
	"github.com/RohanAdwankar/oxdraw/lib/log"
)

// Sink receives committed layout values. Implementations forward them to the
// persistence service. The engine never retries a failed commit and never
// blocks interaction on its outcome; implementations should return promptly.
type Sink interface {
	ApplyLayout(ctx context.Context, u *diagram.LayoutUpdate) error
}

// Transform maps a point from device/screen space into diagram space.
// ok is false when the host cannot supply the mapping at this instant, in
// which case the engine ignores the triggering event.
type Transform func(screen *geo.Point) (p *geo.Point, ok bool)

// Canvas owns the mutable interaction state of one diagram view: the current
// snapshot, the transient draft layer, the active drag, alignment guides,
// selection, and the viewport.
type Canvas struct {
	cfg       Config
	sink      Sink
	transform Transform

	d *diagram.Diagram

	// Draft layers exist only while a manipulation is in flight and are
	// discarded on commit or cancellation. They never persist.
	nodeDrafts map[string]*geo.Point
	edgeDrafts map[string]geo.Points

	drag     *dragState
	selected string

	guides Guides

	viewport viewport
}

func New(cfg Config, sink Sink) *Canvas {
	return &Canvas{
		cfg:        cfg,
		sink:       sink,
		d:          &diagram.Diagram{},
		nodeDrafts: map[string]*geo.Point{},
		edgeDrafts: map[string]geo.Points{},
	}
}

// SetTransform installs the screen-to-diagram mapping supplied by the
// hosting canvas element.
func (c *Canvas) SetTransform(t Transform) {
	c.transform = t
}

// Load replaces the diagram snapshot wholesale. Any in-flight manipulation
// is torn down; the viewport retargets without resetting progress.
func (c *Canvas) Load(ctx context.Context, d *diagram.Diagram) {
	if d == nil {
		d = &diagram.Diagram{}
	}
	if c.drag != nil {
		log.Debug(ctx, "drag torn down by snapshot reload", slog.F("session", c.drag.session))
	}
	c.d = d
	c.resetManipulation()
	if c.selected != "" && c.d.GetNode(c.selected) == nil {
		c.selected = ""
	}
	c.refitViewport()
}

func (c *Canvas) Diagram() *diagram.Diagram {
	return c.d
}

// Select marks a node as selected, the target of keyboard nudges.
// Unknown ids clear the selection.
func (c *Canvas) Select(id string) {
	if c.d.GetNode(id) == nil {
		id = ""
	}
	c.selected = id
}

func (c *Canvas) ClearSelection() {
	c.selected = ""
}

func (c *Canvas) Selection() string {
	return c.selected
}

// ActiveGuides returns the alignment guides of the current pointer-move
// tick. Both slots are nil outside of a drag.
func (c *Canvas) ActiveGuides() Guides {
	return c.guides
}

// DragActive reports whether a manipulation currently owns the pointer.
func (c *Canvas) DragActive() bool {
	return c.drag != nil
}

// toDiagram applies the host transform. A missing or failing transform
// makes the triggering event a no-op rather than an error.
func (c *Canvas) toDiagram(screen *geo.Point) (*geo.Point, bool) {
	if c.transform == nil || screen == nil {
		return nil, false
	}
	return c.transform(screen)
}

// resetManipulation drops all transient interaction state: drafts, the
// active drag, and guides.
func (c *Canvas) resetManipulation() {
	c.nodeDrafts = map[string]*geo.Point{}
	c.edgeDrafts = map[string]geo.Points{}
	c.drag = nil
	c.guides = Guides{}
}

// commit applies the update locally first (optimistic state) and then hands
// it to the sink. Sink failures are logged and dropped; they surface to the
// user outside this engine.
//
// Every outbound update carries a session id. Drag commits inherit the drag's
// session; one-shot manipulations (nudge, insert, reset) get a fresh id here.
func (c *Canvas) commit(ctx context.Context, u *diagram.LayoutUpdate) {
	if u.IsEmpty() {
		return
	}
	if u.Session == "" {
		u.Session = uuid.NewString()
	}
	u.Apply(c.d)
	c.refitViewport()
	if c.sink == nil {
		return
	}
	if err := c.sink.ApplyLayout(ctx, u); err != nil {
		log.Warn(ctx, "layout commit failed", slog.F("session", u.Session), slog.Error(err))
	}
}
