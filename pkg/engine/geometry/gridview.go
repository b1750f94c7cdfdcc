package geometry

// GridView is a read-only 2D array of cells addressed by Point.
type GridView[T any] interface {
	// Width returns the number of columns in the view.
	Width() int
	// Height returns the number of rows in the view.
	Height() int
	// Contains checks if a position is within view bounds.
	Contains(p Point) bool
	// Get returns the value at the given position.
	Get(p Point) T
}

// SettableGridView is a GridView whose cells can be written.
type SettableGridView[T any] interface {
	GridView[T]
	// Set writes the value at the given position.
	Set(p Point, value T)
	// Fill writes the value to every position.
	Fill(value T)
}

// ArrayView is a SettableGridView backed by a flat slice in row-major order.
type ArrayView[T any] struct {
	width  int
	height int
	cells  []T
}

// NewArrayView creates a zero-filled view with the given dimensions.
func NewArrayView[T any](width, height int) *ArrayView[T] {
	if width <= 0 || height <= 0 {
		panic("grid view dimensions must be positive")
	}
	return &ArrayView[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// NewArrayViewFrom wraps an existing row-major slice. The slice length must
// be a multiple of width.
func NewArrayViewFrom[T any](cells []T, width int) *ArrayView[T] {
	if width <= 0 || len(cells)%width != 0 {
		panic("grid view backing slice must be a multiple of its width")
	}
	return &ArrayView[T]{
		width:  width,
		height: len(cells) / width,
		cells:  cells,
	}
}

// Width returns the number of columns in the view.
func (v *ArrayView[T]) Width() int {
	return v.width
}

// Height returns the number of rows in the view.
func (v *ArrayView[T]) Height() int {
	return v.height
}

// Contains checks if a position is within view bounds.
func (v *ArrayView[T]) Contains(p Point) bool {
	return p.X >= 0 && p.X < v.width && p.Y >= 0 && p.Y < v.height
}

// Get returns the value at the given position.
func (v *ArrayView[T]) Get(p Point) T {
	return v.cells[p.Y*v.width+p.X]
}

// Set writes the value at the given position.
func (v *ArrayView[T]) Set(p Point, value T) {
	v.cells[p.Y*v.width+p.X] = value
}

// Fill writes the value to every position.
func (v *ArrayView[T]) Fill(value T) {
	for i := range v.cells {
		v.cells[i] = value
	}
}

// Bounds returns the view's extent as a rectangle anchored at the origin.
func (v *ArrayView[T]) Bounds() Rectangle {
	return NewRectangle(0, 0, v.width, v.height)
}

// Count returns the number of positions in the view holding the given value.
func Count[T comparable](view GridView[T], value T) int {
	n := 0
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			if view.Get(Point{X: x, Y: y}) == value {
				n++
			}
		}
	}
	return n
}

// Snapshot copies the contents of a view into a new ArrayView.
func Snapshot[T any](view GridView[T]) *ArrayView[T] {
	copied := NewArrayView[T](view.Width(), view.Height())
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			p := Point{X: x, Y: y}
			copied.Set(p, view.Get(p))
		}
	}
	return copied
}
