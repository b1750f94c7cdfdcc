// Package area provides lattice point sets and composites: insertion-ordered
// areas with cached bounds, multi-area composites, rasterized polygons, and
// a connected-component finder over boolean grid views.
package area

import (
	"github.com/zyedidia/generic/mapset"

	"warren/pkg/engine/geometry"
)

// ReadOnlyArea is the read-only surface shared by Area, MultiArea and
// PolygonArea.
type ReadOnlyArea interface {
	// Count returns the number of points in the area.
	Count() int
	// At returns the point at the given index.
	At(index int) geometry.Point
	// Contains checks if the area includes the given point.
	Contains(p geometry.Point) bool
	// Bounds returns the smallest rectangle containing every point.
	Bounds() geometry.Rectangle
	// Points returns the points of the area. Callers must not modify the
	// returned slice.
	Points() []geometry.Point
}

// Area is a set of lattice points that remembers insertion order and caches
// its bounding rectangle.
type Area struct {
	points []geometry.Point
	set    mapset.Set[geometry.Point]

	bounds      geometry.Rectangle
	boundsDirty bool
}

// NewArea creates an area containing the given points, in order.
func NewArea(points ...geometry.Point) *Area {
	a := &Area{set: mapset.New[geometry.Point]()}
	for _, p := range points {
		a.Add(p)
	}
	return a
}

// NewAreaWithCapacity creates an empty area pre-sized for the expected
// number of points.
func NewAreaWithCapacity(capacity int) *Area {
	return &Area{
		points: make([]geometry.Point, 0, capacity),
		set:    mapset.New[geometry.Point](),
	}
}

// Count returns the number of points in the area.
func (a *Area) Count() int {
	return len(a.points)
}

// At returns the point at the given insertion index.
func (a *Area) At(index int) geometry.Point {
	return a.points[index]
}

// Contains checks if the area includes the given point.
func (a *Area) Contains(p geometry.Point) bool {
	return a.set.Has(p)
}

// Points returns the points in insertion order. Callers must not modify the
// returned slice.
func (a *Area) Points() []geometry.Point {
	return a.points
}

// Add appends a point to the area. Returns false if it was already present.
func (a *Area) Add(p geometry.Point) bool {
	if a.set.Has(p) {
		return false
	}
	a.set.Put(p)
	if len(a.points) == 0 {
		a.bounds = geometry.NewRectangleFromExtents(p, p)
	} else if !a.boundsDirty {
		a.bounds = growBounds(a.bounds, p)
	}
	a.points = append(a.points, p)
	return true
}

// AddAll appends every given point to the area.
func (a *Area) AddAll(points ...geometry.Point) {
	for _, p := range points {
		a.Add(p)
	}
}

// Remove deletes a point from the area. Returns false if it was not present.
func (a *Area) Remove(p geometry.Point) bool {
	if !a.set.Has(p) {
		return false
	}
	a.set.Remove(p)
	for i, q := range a.points {
		if q == p {
			a.points = append(a.points[:i], a.points[i+1:]...)
			break
		}
	}
	a.boundsDirty = true
	return true
}

// RemoveFunc deletes every point for which pred returns true.
func (a *Area) RemoveFunc(pred func(p geometry.Point) bool) {
	kept := a.points[:0]
	for _, p := range a.points {
		if pred(p) {
			a.set.Remove(p)
			a.boundsDirty = true
		} else {
			kept = append(kept, p)
		}
	}
	a.points = kept
}

// Bounds returns the smallest rectangle containing every point. The bounds
// are cached and recomputed only after removals.
func (a *Area) Bounds() geometry.Rectangle {
	if a.boundsDirty {
		a.recomputeBounds()
	}
	return a.bounds
}

// Intersect returns a new area holding the points present in both areas,
// in this area's insertion order.
func (a *Area) Intersect(other ReadOnlyArea) *Area {
	result := NewArea()
	for _, p := range a.points {
		if other.Contains(p) {
			result.Add(p)
		}
	}
	return result
}

// Matches returns true if both areas hold exactly the same set of points,
// regardless of insertion order.
func (a *Area) Matches(other ReadOnlyArea) bool {
	if other == nil || a.Count() != other.Count() {
		return false
	}
	for _, p := range a.points {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func (a *Area) recomputeBounds() {
	a.boundsDirty = false
	if len(a.points) == 0 {
		a.bounds = geometry.Rectangle{}
		return
	}
	a.bounds = geometry.NewRectangleFromExtents(a.points[0], a.points[0])
	for _, p := range a.points[1:] {
		a.bounds = growBounds(a.bounds, p)
	}
}

func growBounds(r geometry.Rectangle, p geometry.Point) geometry.Rectangle {
	if p.X < r.MinExtent.X {
		r.MinExtent.X = p.X
	}
	if p.Y < r.MinExtent.Y {
		r.MinExtent.Y = p.Y
	}
	if p.X > r.MaxExtent.X {
		r.MaxExtent.X = p.X
	}
	if p.Y > r.MaxExtent.Y {
		r.MaxExtent.Y = p.Y
	}
	return r
}
