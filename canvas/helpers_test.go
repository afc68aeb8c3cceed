package canvas

import (
	"context"

	"github.com/RohanAdwankar/oxdraw/diagram"
	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

// memorySink records every committed layout update.
type memorySink struct {
	updates []*diagram.LayoutUpdate
	err     error
}

func (s *memorySink) ApplyLayout(ctx context.Context, u *diagram.LayoutUpdate) error {
	s.updates = append(s.updates, u)
	return s.err
}

func (s *memorySink) last() *diagram.LayoutUpdate {
	if len(s.updates) == 0 {
		return nil
	}
	return s.updates[len(s.updates)-1]
}

func identityTransform(screen *geo.Point) (*geo.Point, bool) {
	return screen.Copy(), true
}

// testDiagram is three 100x40 nodes and three edges. "a" and "c" share a
// center x of 100; the edge to "missing" exercises endpoint filtering.
//
//	a(100,100)   b(300,100)
//	c(100,300)
func testDiagram() *diagram.Diagram {
	return &diagram.Diagram{
		AutoSize:   diagram.Size{Width: 400, Height: 400},
		RenderSize: diagram.Size{Width: 400, Height: 400},
		Nodes: []*diagram.Node{
			{
				ID: "a", Label: "A", Shape: "rect",
				AutoPosition:     geo.NewPoint(100, 100),
				RenderedPosition: geo.NewPoint(100, 100),
				Width:            100, Height: 40,
			},
			{
				ID: "b", Label: "B", Shape: "rect",
				AutoPosition:     geo.NewPoint(300, 100),
				RenderedPosition: geo.NewPoint(300, 100),
				Width:            100, Height: 40,
			},
			{
				ID: "c", Label: "C", Shape: "rect",
				AutoPosition:     geo.NewPoint(100, 300),
				RenderedPosition: geo.NewPoint(100, 300),
				Width:            100, Height: 40,
			},
		},
		Edges: []*diagram.Edge{
			{
				ID: "a->b", From: "a", To: "b", Label: "ok", Kind: "arrow",
				AutoPoints:     geo.Points{geo.NewPoint(150, 100), geo.NewPoint(250, 100)},
				RenderedPoints: geo.Points{geo.NewPoint(150, 100), geo.NewPoint(250, 100)},
			},
			{
				ID: "b->c", From: "b", To: "c", Kind: "arrow",
				AutoPoints: geo.Points{
					geo.NewPoint(300, 120), geo.NewPoint(300, 250), geo.NewPoint(150, 300),
				},
				RenderedPoints: geo.Points{
					geo.NewPoint(300, 120), geo.NewPoint(300, 250), geo.NewPoint(150, 300),
				},
			},
			{
				ID: "a->missing", From: "a", To: "zz", Kind: "arrow",
				RenderedPoints: geo.Points{geo.NewPoint(0, 0), geo.NewPoint(10, 10)},
			},
		},
	}
}

func newTestCanvas(ctx context.Context) (*Canvas, *memorySink) {
	sink := &memorySink{}
	c := New(DefaultConfig(), sink)
	c.SetTransform(identityTransform)
	c.Load(ctx, testDiagram())
	return c, sink
}
