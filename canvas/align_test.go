package canvas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

// Dragging b so its left edge falls within tolerance of a's left edge must
// snap b onto that edge and produce a vertical edge guide naming both.
func TestAlignEdgeToEdge(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCanvas(ctx)

	require.True(t, c.StartNodeDrag(ctx, "b", geo.NewPoint(300, 100)))
	// proposed center 104: b's left edge lands at 54, 4 away from a's at 50
	c.MovePointer(ctx, geo.NewPoint(104, 150))

	b := c.Diagram().GetNode("b")
	pos := c.NodeCenter(b)
	assert.Equal(t, 100.0, pos.X, "left edges aligned means centers of same-size boxes coincide")

	guides := c.ActiveGuides()
	require.NotNil(t, guides.Vertical)
	assert.Equal(t, AxisVertical, guides.Vertical.Axis)
	assert.Equal(t, GuideEdge, guides.Vertical.Kind)
	assert.Equal(t, 50.0, guides.Vertical.Position)
	assert.Equal(t, "b", guides.Vertical.SourceID)
	assert.Equal(t, "a", guides.Vertical.TargetID, "ties go to the first candidate encountered")

	// guide extent spans the union of both footprints on y
	assert.Equal(t, 80.0, guides.Vertical.Start)
	assert.Equal(t, 170.0, guides.Vertical.End)

	c.EndDrag(ctx)
	assert.Nil(t, c.ActiveGuides().Vertical)
}

// An axis with no qualifying candidate falls back to the grid.
func TestGridFallback(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCanvas(ctx)

	require.True(t, c.StartNodeDrag(ctx, "b", geo.NewPoint(300, 100)))
	c.MovePointer(ctx, geo.NewPoint(207, 153))

	pos := c.NodeCenter(c.Diagram().GetNode("b"))
	assert.Equal(t, 210.0, pos.X)
	assert.Equal(t, 150.0, pos.Y)

	guides := c.ActiveGuides()
	assert.Nil(t, guides.Vertical)
	assert.Nil(t, guides.Horizontal)

	c.CancelDrag(ctx)
}

// One axis can align while the other grid-snaps.
func TestMixedAxes(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCanvas(ctx)

	require.True(t, c.StartNodeDrag(ctx, "b", geo.NewPoint(300, 100)))
	// y proposes 102: b's top edge at 82, 2 away from a's at 80. x proposes
	// 301 with nothing nearby.
	c.MovePointer(ctx, geo.NewPoint(301, 102))

	pos := c.NodeCenter(c.Diagram().GetNode("b"))
	assert.Equal(t, 300.0, pos.X, "grid")
	assert.Equal(t, 100.0, pos.Y, "aligned top-to-top")

	guides := c.ActiveGuides()
	assert.Nil(t, guides.Vertical)
	require.NotNil(t, guides.Horizontal)
	assert.Equal(t, AxisHorizontal, guides.Horizontal.Axis)
	assert.Equal(t, 80.0, guides.Horizontal.Position)

	c.CancelDrag(ctx)
}

// Waypoint handles are zero-size alignment targets: only center-to-center
// pairs can match a dragged node against them.
func TestAlignAgainstWaypointHandle(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCanvas(ctx)

	d := testDiagram()
	d.GetEdge("b->c").OverridePoints = geo.Points{geo.NewPoint(200, 200)}
	c.Load(ctx, d)

	require.True(t, c.StartNodeDrag(ctx, "a", geo.NewPoint(100, 100)))
	c.MovePointer(ctx, geo.NewPoint(203, 443))

	pos := c.NodeCenter(c.Diagram().GetNode("a"))
	assert.Equal(t, 200.0, pos.X)

	guides := c.ActiveGuides()
	require.NotNil(t, guides.Vertical)
	assert.Equal(t, GuideCenter, guides.Vertical.Kind)
	assert.Equal(t, "b->c#0", guides.Vertical.TargetID)

	c.CancelDrag(ctx)
}

// A dragged waypoint snaps to node box lines too.
func TestWaypointSnapsToNodeCenter(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCanvas(ctx)

	// grab the synthesized handle of a->b (midpoint, (200, 100))
	require.True(t, c.StartWaypointDrag(ctx, "a->b", -1, geo.NewPoint(200, 100)))
	c.MovePointer(ctx, geo.NewPoint(103, 203))

	wps, ok := c.EdgeWaypoints(c.Diagram().GetEdge("a->b"))
	require.True(t, ok)
	require.Len(t, wps, 1)
	assert.Equal(t, 100.0, wps[0].X, "snapped to a/c shared center x")
	assert.Equal(t, 200.0, wps[0].Y, "grid on y")

	c.CancelDrag(ctx)
}
