package geo

import (
	"testing"
)

func TestDistanceToSegment(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{100, 0}

	p := &Point{50, 70}
	if d := p.DistanceToSegment(a, b); d != 70.0 {
		t.Fatalf("expected 70.0 and got %v", d)
	}

	// beyond the segment end, distance is to the endpoint
	p = &Point{130, 40}
	if d := p.DistanceToSegment(a, b); d != 50.0 {
		t.Fatalf("expected 50.0 and got %v", d)
	}
}

func TestAddVector(t *testing.T) {
	start := &Point{1.5, 5.3}
	c := NewVector(-3.5, -2.3)
	p2 := start.AddVector(c)

	if p2.X != -2 || p2.Y != 3 {
		t.Fatalf("expected resulting point to be (-2, 3), got %+v", p2)
	}
}

func TestRoundToNearest(t *testing.T) {
	if v := RoundToNearest(27, 10); v != 30 {
		t.Fatalf("expected 30, got %v", v)
	}
	if v := RoundToNearest(-27, 10); v != -30 {
		t.Fatalf("expected -30, got %v", v)
	}
	if v := RoundToNearest(25, 10); v != 30 {
		t.Fatalf("expected half step to round up, got %v", v)
	}
	if v := RoundToNearest(13.7, 0); v != 13.7 {
		t.Fatalf("expected zero step to be identity, got %v", v)
	}
}

func TestBoxUnion(t *testing.T) {
	a := NewBox(NewPoint(0, 0), 10, 10)
	b := NewBox(NewPoint(20, -5), 10, 10)

	u := a.Union(b)
	if u.Left() != 0 || u.Top() != -5 || u.Right() != 30 || u.Bottom() != 10 {
		t.Fatalf("unexpected union %s", u.ToString())
	}

	if u := a.Union(nil); !u.Equals(a) {
		t.Fatalf("union with nil should copy the receiver, got %s", u.ToString())
	}
}

func TestNearestSegment(t *testing.T) {
	route := Route{
		NewPoint(0, 0),
		NewPoint(100, 0),
		NewPoint(100, 100),
	}

	if i := route.NearestSegment(NewPoint(50, 10)); i != 0 {
		t.Fatalf("expected segment 0, got %d", i)
	}
	if i := route.NearestSegment(NewPoint(90, 80)); i != 1 {
		t.Fatalf("expected segment 1, got %d", i)
	}
	if i := (Route{NewPoint(0, 0)}).NearestSegment(NewPoint(1, 1)); i != -1 {
		t.Fatalf("expected -1 for degenerate route, got %d", i)
	}
}

func TestRouteCentroid(t *testing.T) {
	ps := Points{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)}
	c := ps.Centroid()
	if c.X != 5 || c.Y != 5 {
		t.Fatalf("expected (5, 5), got %s", c.ToString())
	}
}
