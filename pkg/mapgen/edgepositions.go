package mapgen

import "warren/pkg/engine/geometry"

// RectangleEdgePositionsList tracks the positions along each cardinal side
// of a rectangle, corners excluded, with support for removing positions as
// they are consumed.
type RectangleEdgePositionsList struct {
	rect   geometry.Rectangle
	bySide map[geometry.Direction][]geometry.Point
}

// NewRectangleEdgePositionsList creates the list for a rectangle's edges.
// Corners belong to no side so that every tracked position is orthogonally
// adjacent to the rectangle's interior.
func NewRectangleEdgePositionsList(rect geometry.Rectangle) *RectangleEdgePositionsList {
	l := &RectangleEdgePositionsList{
		rect:   rect,
		bySide: make(map[geometry.Direction][]geometry.Point),
	}
	for _, side := range geometry.AdjacencyCardinals.DirectionsOfNeighborsClockwise() {
		for _, p := range rect.PositionsOnSide(side) {
			if l.isCorner(p) {
				continue
			}
			l.bySide[side] = append(l.bySide[side], p)
		}
	}
	return l
}

// Rectangle returns the rectangle whose edges are tracked.
func (l *RectangleEdgePositionsList) Rectangle() geometry.Rectangle {
	return l.rect
}

// PositionsOnSide returns the remaining positions on one side. Callers must
// not modify the returned slice.
func (l *RectangleEdgePositionsList) PositionsOnSide(side geometry.Direction) []geometry.Point {
	return l.bySide[side]
}

// Remove deletes a position from whichever side holds it. Returns false if
// the position is not tracked.
func (l *RectangleEdgePositionsList) Remove(p geometry.Point) bool {
	for side, positions := range l.bySide {
		for i, existing := range positions {
			if existing == p {
				l.bySide[side] = append(positions[:i], positions[i+1:]...)
				return true
			}
		}
	}
	return false
}

func (l *RectangleEdgePositionsList) isCorner(p geometry.Point) bool {
	onVertical := p.X == l.rect.MinExtent.X || p.X == l.rect.MaxExtent.X
	onHorizontal := p.Y == l.rect.MinExtent.Y || p.Y == l.rect.MaxExtent.Y
	return onVertical && onHorizontal
}
