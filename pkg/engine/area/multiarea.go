package area

import "warren/pkg/engine/geometry"

// MultiArea is a shallow composite over a list of sub-areas. The sub-areas
// are referenced, not copied; membership and iteration are their union in
// list order. Points shared between sub-areas appear once per sub-area.
type MultiArea struct {
	subAreas []ReadOnlyArea
}

// NewMultiArea creates a composite over the given sub-areas.
func NewMultiArea(subAreas ...ReadOnlyArea) *MultiArea {
	return &MultiArea{subAreas: subAreas}
}

// AddSubArea appends a sub-area to the composite.
func (m *MultiArea) AddSubArea(sub ReadOnlyArea) {
	m.subAreas = append(m.subAreas, sub)
}

// SubAreas returns the composite's sub-areas. Callers must not modify the
// returned slice.
func (m *MultiArea) SubAreas() []ReadOnlyArea {
	return m.subAreas
}

// Count returns the total number of points across all sub-areas.
func (m *MultiArea) Count() int {
	n := 0
	for _, sub := range m.subAreas {
		n += sub.Count()
	}
	return n
}

// At maps a global index across the concatenated sub-areas to a point.
func (m *MultiArea) At(index int) geometry.Point {
	for _, sub := range m.subAreas {
		if index < sub.Count() {
			return sub.At(index)
		}
		index -= sub.Count()
	}
	panic("multi-area index out of range")
}

// Contains checks the sub-areas in order for the given point.
func (m *MultiArea) Contains(p geometry.Point) bool {
	for _, sub := range m.subAreas {
		if sub.Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the union of the sub-areas' bounds. An empty composite has
// zero bounds.
func (m *MultiArea) Bounds() geometry.Rectangle {
	if len(m.subAreas) == 0 {
		return geometry.Rectangle{}
	}
	bounds := m.subAreas[0].Bounds()
	for _, sub := range m.subAreas[1:] {
		b := sub.Bounds()
		bounds = growBounds(growBounds(bounds, b.MinExtent), b.MaxExtent)
	}
	return bounds
}

// Points returns the concatenated points of all sub-areas.
func (m *MultiArea) Points() []geometry.Point {
	points := make([]geometry.Point, 0, m.Count())
	for _, sub := range m.subAreas {
		points = append(points, sub.Points()...)
	}
	return points
}
