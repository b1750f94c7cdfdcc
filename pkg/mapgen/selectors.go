package mapgen

import (
	"math/rand"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// ConnectionPointSelector chooses the pair of points a tunnel between two
// areas should connect.
type ConnectionPointSelector interface {
	SelectConnectionPoints(a, b area.ReadOnlyArea) (geometry.Point, geometry.Point)
}

// RandomConnectionPointSelector picks a uniformly random point from each
// area.
type RandomConnectionPointSelector struct {
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// SelectConnectionPoints implements ConnectionPointSelector.
func (s *RandomConnectionPointSelector) SelectConnectionPoints(a, b area.ReadOnlyArea) (geometry.Point, geometry.Point) {
	rng := rngOrGlobal(s.RNG)
	return a.At(rng.Intn(a.Count())), b.At(rng.Intn(b.Count()))
}

// CenterBoundsConnectionPointSelector picks the center of each area's
// bounding rectangle. The chosen points may lie outside concave areas.
type CenterBoundsConnectionPointSelector struct{}

// SelectConnectionPoints implements ConnectionPointSelector.
func (s *CenterBoundsConnectionPointSelector) SelectConnectionPoints(a, b area.ReadOnlyArea) (geometry.Point, geometry.Point) {
	return a.Bounds().Center(), b.Bounds().Center()
}

// ClosestConnectionPointSelector picks the pair of points, one from each
// area, with the smallest distance under its metric. The first minimum
// encountered wins ties.
type ClosestConnectionPointSelector struct {
	// DistanceCalc is the metric to minimize.
	DistanceCalc geometry.Distance
}

// SelectConnectionPoints implements ConnectionPointSelector.
func (s *ClosestConnectionPointSelector) SelectConnectionPoints(a, b area.ReadOnlyArea) (geometry.Point, geometry.Point) {
	bestDistance := -1.0
	var bestA, bestB geometry.Point
	for _, pa := range a.Points() {
		for _, pb := range b.Points() {
			d := s.DistanceCalc.Of(pa, pb)
			if bestDistance < 0 || d < bestDistance {
				bestDistance = d
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB
}
