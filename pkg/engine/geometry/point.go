// Package geometry provides generic 2D grid primitives: points, rectangles,
// directions, adjacency rules, distance metrics, line rasterization, and grid
// views. These are engine-level constructs usable by any tile-based game.
package geometry

import "fmt"

// Point is an immutable position on the integer lattice.
// The Y axis grows downward, matching screen/grid coordinates.
type Point struct {
	X int
	Y int
}

// NewPoint creates a point at the given coordinates.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate returns the point moved by the given deltas.
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
