package geometry

import "fmt"

// Rectangle is an axis-aligned rectangle with inclusive extents: both
// MinExtent and MaxExtent are inside the rectangle.
type Rectangle struct {
	MinExtent Point
	MaxExtent Point
}

// NewRectangle creates a rectangle from its top-left corner and size.
func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{
		MinExtent: Point{X: x, Y: y},
		MaxExtent: Point{X: x + width - 1, Y: y + height - 1},
	}
}

// NewRectangleFromExtents creates a rectangle from two inclusive corners.
func NewRectangleFromExtents(min, max Point) Rectangle {
	return Rectangle{MinExtent: min, MaxExtent: max}
}

// Width returns the number of columns the rectangle spans.
func (r Rectangle) Width() int {
	return r.MaxExtent.X - r.MinExtent.X + 1
}

// Height returns the number of rows the rectangle spans.
func (r Rectangle) Height() int {
	return r.MaxExtent.Y - r.MinExtent.Y + 1
}

// Size returns the number of positions inside the rectangle.
func (r Rectangle) Size() int {
	if r.Width() <= 0 || r.Height() <= 0 {
		return 0
	}
	return r.Width() * r.Height()
}

// Center returns the center position, rounded toward MinExtent.
func (r Rectangle) Center() Point {
	return Point{
		X: r.MinExtent.X + (r.MaxExtent.X-r.MinExtent.X)/2,
		Y: r.MinExtent.Y + (r.MaxExtent.Y-r.MinExtent.Y)/2,
	}
}

// Contains returns true if p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.MinExtent.X && p.X <= r.MaxExtent.X &&
		p.Y >= r.MinExtent.Y && p.Y <= r.MaxExtent.Y
}

// Intersects returns true if the two rectangles share at least one position.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.MinExtent.X <= other.MaxExtent.X && r.MaxExtent.X >= other.MinExtent.X &&
		r.MinExtent.Y <= other.MaxExtent.Y && r.MaxExtent.Y >= other.MinExtent.Y
}

// Expand returns the rectangle grown outward by dx columns on the left and
// right and dy rows on the top and bottom.
func (r Rectangle) Expand(dx, dy int) Rectangle {
	return Rectangle{
		MinExtent: Point{X: r.MinExtent.X - dx, Y: r.MinExtent.Y - dy},
		MaxExtent: Point{X: r.MaxExtent.X + dx, Y: r.MaxExtent.Y + dy},
	}
}

// Translate returns the rectangle moved by the given delta.
func (r Rectangle) Translate(delta Point) Rectangle {
	return Rectangle{MinExtent: r.MinExtent.Add(delta), MaxExtent: r.MaxExtent.Add(delta)}
}

// Positions returns every position inside the rectangle in row-major order.
func (r Rectangle) Positions() []Point {
	positions := make([]Point, 0, r.Size())
	for y := r.MinExtent.Y; y <= r.MaxExtent.Y; y++ {
		for x := r.MinExtent.X; x <= r.MaxExtent.X; x++ {
			positions = append(positions, Point{X: x, Y: y})
		}
	}
	return positions
}

// PerimeterPositions returns every position on the rectangle's outer edge.
// Each corner appears exactly once.
func (r Rectangle) PerimeterPositions() []Point {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil
	}
	if r.Height() == 1 {
		return r.Positions()
	}
	var positions []Point
	for x := r.MinExtent.X; x <= r.MaxExtent.X; x++ {
		positions = append(positions, Point{X: x, Y: r.MinExtent.Y})
	}
	for y := r.MinExtent.Y + 1; y < r.MaxExtent.Y; y++ {
		positions = append(positions, Point{X: r.MinExtent.X, Y: y})
		if r.Width() > 1 {
			positions = append(positions, Point{X: r.MaxExtent.X, Y: y})
		}
	}
	for x := r.MinExtent.X; x <= r.MaxExtent.X; x++ {
		positions = append(positions, Point{X: x, Y: r.MaxExtent.Y})
	}
	return positions
}

// PositionsOnSide returns the positions along one cardinal edge of the
// rectangle, corners included, ordered by increasing coordinate.
func (r Rectangle) PositionsOnSide(side Direction) []Point {
	var positions []Point
	switch side {
	case Up:
		for x := r.MinExtent.X; x <= r.MaxExtent.X; x++ {
			positions = append(positions, Point{X: x, Y: r.MinExtent.Y})
		}
	case Down:
		for x := r.MinExtent.X; x <= r.MaxExtent.X; x++ {
			positions = append(positions, Point{X: x, Y: r.MaxExtent.Y})
		}
	case Left:
		for y := r.MinExtent.Y; y <= r.MaxExtent.Y; y++ {
			positions = append(positions, Point{X: r.MinExtent.X, Y: y})
		}
	case Right:
		for y := r.MinExtent.Y; y <= r.MaxExtent.Y; y++ {
			positions = append(positions, Point{X: r.MaxExtent.X, Y: y})
		}
	}
	return positions
}

// IsOnSide returns true if p lies on the given cardinal edge of the
// rectangle.
func (r Rectangle) IsOnSide(p Point, side Direction) bool {
	if !r.Contains(p) {
		return false
	}
	switch side {
	case Up:
		return p.Y == r.MinExtent.Y
	case Down:
		return p.Y == r.MaxExtent.Y
	case Left:
		return p.X == r.MinExtent.X
	case Right:
		return p.X == r.MaxExtent.X
	default:
		return false
	}
}

// String returns the rectangle as "min -> max".
func (r Rectangle) String() string {
	return fmt.Sprintf("%v -> %v", r.MinExtent, r.MaxExtent)
}
