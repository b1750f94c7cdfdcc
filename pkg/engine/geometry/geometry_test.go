// Package geometry tests the grid primitives: directions, adjacency,
// distance metrics, rectangles, lines and grid views.
package geometry

import "testing"

func TestDirection_RotateAndOpposite(t *testing.T) {
	if got := Up.Rotate(4); got != Down {
		t.Errorf("Up.Rotate(4) = %v, want Down", got)
	}
	if got := UpLeft.Rotate(1); got != Up {
		t.Errorf("UpLeft.Rotate(1) = %v, want Up", got)
	}
	if got := Up.Rotate(-1); got != UpLeft {
		t.Errorf("Up.Rotate(-1) = %v, want UpLeft", got)
	}
	for _, d := range eightWayDirections {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
	if DirNone.Rotate(3) != DirNone {
		t.Error("DirNone must rotate to itself")
	}
}

func TestDirection_Delta(t *testing.T) {
	dx, dy := Up.Delta()
	if dx != 0 || dy != -1 {
		t.Errorf("Up.Delta() = (%d,%d), want (0,-1)", dx, dy)
	}
	dx, dy = DownLeft.Delta()
	if dx != -1 || dy != 1 {
		t.Errorf("DownLeft.Delta() = (%d,%d), want (-1,1)", dx, dy)
	}
}

func TestAdjacencyRule_Neighbors(t *testing.T) {
	p := NewPoint(3, 3)
	if got := len(AdjacencyCardinals.Neighbors(p)); got != 4 {
		t.Errorf("Cardinals neighbor count = %d, want 4", got)
	}
	if got := len(AdjacencyDiagonals.Neighbors(p)); got != 4 {
		t.Errorf("Diagonals neighbor count = %d, want 4", got)
	}
	if got := len(AdjacencyEightWay.Neighbors(p)); got != 8 {
		t.Errorf("EightWay neighbor count = %d, want 8", got)
	}
	for _, n := range AdjacencyCardinals.Neighbors(p) {
		if abs(n.X-p.X)+abs(n.Y-p.Y) != 1 {
			t.Errorf("cardinal neighbor %v is not orthogonally adjacent to %v", n, p)
		}
	}
}

func TestDistance_Calculate(t *testing.T) {
	if got := DistanceManhattan.Calculate(2, -3); got != 5 {
		t.Errorf("Manhattan(2,-3) = %v, want 5", got)
	}
	if got := DistanceChebyshev.Calculate(2, -3); got != 3 {
		t.Errorf("Chebyshev(2,-3) = %v, want 3", got)
	}
	if got := DistanceEuclidean.Calculate(3, 4); got != 5 {
		t.Errorf("Euclidean(3,4) = %v, want 5", got)
	}
	if DistanceManhattan.AdjacencyRule() != AdjacencyCardinals {
		t.Error("Manhattan adjacency must be Cardinals")
	}
	if DistanceChebyshev.AdjacencyRule() != AdjacencyEightWay {
		t.Error("Chebyshev adjacency must be EightWay")
	}
}

func TestRectangle_Basics(t *testing.T) {
	r := NewRectangle(1, 2, 5, 3)
	if r.Width() != 5 || r.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", r.Width(), r.Height())
	}
	if r.MaxExtent != NewPoint(5, 4) {
		t.Errorf("MaxExtent = %v, want (5,4)", r.MaxExtent)
	}
	if r.Center() != NewPoint(3, 3) {
		t.Errorf("Center = %v, want (3,3)", r.Center())
	}
	if !r.Contains(NewPoint(5, 4)) || r.Contains(NewPoint(6, 4)) {
		t.Error("Contains must treat extents as inclusive")
	}
	if len(r.Positions()) != 15 {
		t.Errorf("Positions count = %d, want 15", len(r.Positions()))
	}
}

func TestRectangle_ExpandAndSides(t *testing.T) {
	r := NewRectangle(2, 2, 3, 3)
	e := r.Expand(1, 1)
	if e.MinExtent != NewPoint(1, 1) || e.MaxExtent != NewPoint(5, 5) {
		t.Fatalf("Expand(1,1) = %v, want (1,1) -> (5,5)", e)
	}
	if !e.IsOnSide(NewPoint(3, 1), Up) {
		t.Error("(3,1) must be on the Up side")
	}
	if e.IsOnSide(NewPoint(3, 3), Up) {
		t.Error("(3,3) must not be on the Up side")
	}
	perimeter := e.PerimeterPositions()
	if len(perimeter) != 16 {
		t.Errorf("perimeter count = %d, want 16", len(perimeter))
	}
	seen := make(map[Point]bool)
	for _, p := range perimeter {
		if seen[p] {
			t.Errorf("perimeter position %v appears twice", p)
		}
		seen[p] = true
	}
}

func TestLine_Bresenham(t *testing.T) {
	points := Line(NewPoint(0, 0), NewPoint(4, 2), LineBresenham)
	if points[0] != NewPoint(0, 0) || points[len(points)-1] != NewPoint(4, 2) {
		t.Fatalf("line endpoints = %v, %v", points[0], points[len(points)-1])
	}
	if len(points) != 5 {
		t.Errorf("line length = %d, want 5", len(points))
	}
	for i := 1; i < len(points); i++ {
		if abs(points[i].X-points[i-1].X) > 1 || abs(points[i].Y-points[i-1].Y) > 1 {
			t.Errorf("non-adjacent step from %v to %v", points[i-1], points[i])
		}
	}
}

func TestLine_Orthogonal(t *testing.T) {
	points := Line(NewPoint(0, 0), NewPoint(2, 2), LineOrthogonal)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if len(points) != len(want) {
		t.Fatalf("line = %v, want %v", points, want)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("line = %v, want %v", points, want)
		}
	}
}

func TestArrayView_SetGet(t *testing.T) {
	view := NewArrayView[int](4, 3)
	if !view.Contains(NewPoint(3, 2)) || view.Contains(NewPoint(4, 0)) {
		t.Fatal("Contains does not match view bounds")
	}
	view.Set(NewPoint(2, 1), 7)
	if got := view.Get(NewPoint(2, 1)); got != 7 {
		t.Errorf("Get = %d, want 7", got)
	}
	if got := Count(view, 0); got != 11 {
		t.Errorf("Count(0) = %d, want 11", got)
	}
	view.Fill(1)
	if got := Count(view, 1); got != 12 {
		t.Errorf("Count(1) after Fill = %d, want 12", got)
	}
}

func TestSnapshot_Copies(t *testing.T) {
	view := NewArrayView[bool](3, 3)
	view.Set(NewPoint(1, 1), true)
	snap := Snapshot[bool](view)
	view.Set(NewPoint(1, 1), false)
	if !snap.Get(NewPoint(1, 1)) {
		t.Error("snapshot must not alias the source view")
	}
}
