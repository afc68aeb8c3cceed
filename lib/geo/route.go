package geo

import (
	"math"
)

type Route []*Point

func (route Route) GetBoundingBox() *Box {
	if len(route) == 0 {
		return nil
	}
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range route {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

// NearestSegment returns the index i of the segment route[i] -> route[i+1]
// with minimum perpendicular distance to p, or -1 for routes of fewer than
// two points. Ties keep the earlier segment.
func (route Route) NearestSegment(p *Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < len(route)-1; i++ {
		d := p.DistanceToSegment(route[i], route[i+1])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// MedianInterior returns the middle interior point of the route
// (routes of exactly two points have none).
func (route Route) MedianInterior() *Point {
	if len(route) <= 2 {
		return nil
	}
	interior := route[1 : len(route)-1]
	return interior[len(interior)/2]
}
