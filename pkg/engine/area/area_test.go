// Package area tests the point-set types: Area ordering and bounds
// caching, MultiArea composition, and the polygon rasterizer.
package area

import (
	"testing"

	"warren/pkg/engine/geometry"
)

func TestArea_InsertionOrder(t *testing.T) {
	a := NewArea(geometry.NewPoint(1, 1), geometry.NewPoint(5, 2), geometry.NewPoint(3, 0))
	want := []geometry.Point{{X: 1, Y: 1}, {X: 5, Y: 2}, {X: 3, Y: 0}}
	points := a.Points()
	if len(points) != len(want) {
		t.Fatalf("Points = %v, want %v", points, want)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("Points = %v, want %v", points, want)
		}
	}
	if a.At(1) != want[1] {
		t.Errorf("At(1) = %v, want %v", a.At(1), want[1])
	}
}

func TestArea_DuplicateAddIgnored(t *testing.T) {
	a := NewArea()
	if !a.Add(geometry.NewPoint(2, 2)) {
		t.Fatal("first Add must report insertion")
	}
	if a.Add(geometry.NewPoint(2, 2)) {
		t.Error("second Add of the same point must report no insertion")
	}
	if a.Count() != 1 {
		t.Errorf("Count = %d, want 1", a.Count())
	}
}

func TestArea_BoundsTrackRemovals(t *testing.T) {
	a := NewArea(geometry.NewPoint(1, 1), geometry.NewPoint(5, 2), geometry.NewPoint(3, 0))
	bounds := a.Bounds()
	if bounds.MinExtent != geometry.NewPoint(1, 0) || bounds.MaxExtent != geometry.NewPoint(5, 2) {
		t.Fatalf("Bounds = %v, want (1,0) -> (5,2)", bounds)
	}

	a.Remove(geometry.NewPoint(5, 2))
	bounds = a.Bounds()
	if bounds.MinExtent != geometry.NewPoint(1, 0) || bounds.MaxExtent != geometry.NewPoint(3, 1) {
		t.Errorf("Bounds after removal = %v, want (1,0) -> (3,1)", bounds)
	}
	if a.Contains(geometry.NewPoint(5, 2)) {
		t.Error("removed point must not be contained")
	}
}

func TestArea_RemoveFunc(t *testing.T) {
	a := NewArea()
	for x := 0; x < 6; x++ {
		a.Add(geometry.NewPoint(x, 0))
	}
	a.RemoveFunc(func(p geometry.Point) bool { return p.X%2 == 0 })
	if a.Count() != 3 {
		t.Fatalf("Count = %d, want 3", a.Count())
	}
	for _, p := range a.Points() {
		if p.X%2 == 0 {
			t.Errorf("point %v should have been removed", p)
		}
	}
}

func TestArea_MatchesIgnoresOrder(t *testing.T) {
	a := NewArea(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.NewPoint(2, 0))
	b := NewArea(geometry.NewPoint(2, 0), geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if !a.Matches(b) {
		t.Error("areas with the same points must match")
	}
	b.Add(geometry.NewPoint(3, 0))
	if a.Matches(b) {
		t.Error("areas of different size must not match")
	}
}

func TestArea_Intersect(t *testing.T) {
	a := NewArea(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.NewPoint(2, 0))
	b := NewArea(geometry.NewPoint(1, 0), geometry.NewPoint(2, 0), geometry.NewPoint(3, 0))
	got := a.Intersect(b)
	if got.Count() != 2 || !got.Contains(geometry.NewPoint(1, 0)) || !got.Contains(geometry.NewPoint(2, 0)) {
		t.Errorf("Intersect = %v", got.Points())
	}
}

func TestMultiArea_IndexingAcrossSubAreas(t *testing.T) {
	first := NewArea(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	second := NewArea(geometry.NewPoint(5, 5), geometry.NewPoint(6, 5), geometry.NewPoint(7, 5))
	m := NewMultiArea(first, second)

	if m.Count() != 5 {
		t.Fatalf("Count = %d, want 5", m.Count())
	}
	if m.At(1) != geometry.NewPoint(1, 0) {
		t.Errorf("At(1) = %v, want (1,0)", m.At(1))
	}
	if m.At(3) != geometry.NewPoint(6, 5) {
		t.Errorf("At(3) = %v, want (6,5)", m.At(3))
	}
	if !m.Contains(geometry.NewPoint(7, 5)) || m.Contains(geometry.NewPoint(2, 0)) {
		t.Error("Contains must probe every sub-area")
	}
	bounds := m.Bounds()
	if bounds.MinExtent != geometry.NewPoint(0, 0) || bounds.MaxExtent != geometry.NewPoint(7, 5) {
		t.Errorf("Bounds = %v, want (0,0) -> (7,5)", bounds)
	}
}

func TestMultiArea_SharedSubAreas(t *testing.T) {
	shared := NewArea(geometry.NewPoint(2, 2))
	m := NewMultiArea(shared)
	shared.Add(geometry.NewPoint(3, 2))
	if m.Count() != 2 {
		t.Error("composite must reference, not copy, its sub-areas")
	}
}
