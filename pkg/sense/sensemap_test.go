package sense

import (
	"math"
	"sort"
	"testing"

	"warren/pkg/engine/geometry"
)

// sortedPoints returns a sorted copy for order-insensitive comparison.
func sortedPoints(points []geometry.Point) []geometry.Point {
	out := append([]geometry.Point(nil), points...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// newShadowSource builds a shadowcasting source or fails the test.
func newShadowSource(t *testing.T, position geometry.Point, radius float64) *RecursiveShadowcastingSource {
	t.Helper()
	src, err := NewRecursiveShadowcastingSource(position, radius, geometry.DistanceChebyshev, 1.0)
	if err != nil {
		t.Fatalf("NewRecursiveShadowcastingSource: %v", err)
	}
	return src
}

func TestSenseMap_OverlappingSourcesAdd(t *testing.T) {
	resistance := zeroResistance(20, 20)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(5, 5), 2))
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(7, 5), 2))
	senseMap.Calculate()

	// (6,5) is one step from each source: decay 1/3 per step, twice.
	want := 2 * (1.0 - 1.0/3.0)
	if got := senseMap.ResultView().Get(geometry.NewPoint(6, 5)); math.Abs(got-want) > 1e-9 {
		t.Errorf("overlap value = %v, want %v", got, want)
	}
}

func TestSenseMap_MembershipMatchesResultView(t *testing.T) {
	resistance := zeroResistance(20, 20)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(5, 5), 3))
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(15, 15), 2))
	senseMap.Calculate()

	positive := 0
	result := senseMap.ResultView()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if result.Get(geometry.NewPoint(x, y)) > 0 {
				positive++
			}
		}
	}
	if got := len(senseMap.CurrentSenseMap()); got != positive {
		t.Errorf("CurrentSenseMap size = %d, want %d positive cells", got, positive)
	}

	in := senseMap.NewlyInSenseMap()
	out := senseMap.NewlyOutOfSenseMap()
	seen := make(map[geometry.Point]bool)
	for _, p := range in {
		seen[p] = true
	}
	for _, p := range out {
		if seen[p] {
			t.Errorf("position %v is both newly in and newly out", p)
		}
	}
}

func TestSenseMap_DeltasAcrossMoves(t *testing.T) {
	resistance := zeroResistance(30, 30)
	src := newShadowSource(t, geometry.NewPoint(5, 5), 2)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(src)
	senseMap.Calculate()

	firstCurrent := sortedPoints(senseMap.CurrentSenseMap())

	src.SetPosition(geometry.NewPoint(20, 20))
	senseMap.Calculate()

	// The fields do not overlap, so everything flipped.
	newlyOut := sortedPoints(senseMap.NewlyOutOfSenseMap())
	if len(newlyOut) != len(firstCurrent) {
		t.Fatalf("NewlyOut size = %d, want %d", len(newlyOut), len(firstCurrent))
	}
	for i := range newlyOut {
		if newlyOut[i] != firstCurrent[i] {
			t.Fatalf("NewlyOut = %v, want the previous field %v", newlyOut, firstCurrent)
		}
	}
	if len(senseMap.NewlyInSenseMap()) != len(senseMap.CurrentSenseMap()) {
		t.Error("after a disjoint move every current position is newly in")
	}
}

func TestSenseMap_ParallelMatchesSequential(t *testing.T) {
	build := func(parallel bool) geometry.GridView[float64] {
		resistance := zeroResistance(25, 25)
		resistance.Set(geometry.NewPoint(10, 10), 1.0)
		senseMap := NewSenseMap(resistance)
		senseMap.ParallelCalculate = parallel
		senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(8, 8), 4))
		senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(14, 12), 3))
		senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(5, 18), 5))
		senseMap.Calculate()
		return senseMap.ResultView()
	}

	parallel := build(true)
	sequential := build(false)
	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			p := geometry.NewPoint(x, y)
			if parallel.Get(p) != sequential.Get(p) {
				t.Fatalf("parallel and sequential results differ at %v", p)
			}
		}
	}
}

func TestSenseMap_DisabledSourceContributesNothing(t *testing.T) {
	resistance := zeroResistance(20, 20)
	src := newShadowSource(t, geometry.NewPoint(5, 5), 3)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(src)
	src.SetEnabled(false)
	senseMap.Calculate()

	if got := len(senseMap.CurrentSenseMap()); got != 0 {
		t.Errorf("CurrentSenseMap size = %d, want 0 with the source disabled", got)
	}
}

func TestSenseMap_RemoveSourceDetachesResistance(t *testing.T) {
	resistance := zeroResistance(20, 20)
	src := newShadowSource(t, geometry.NewPoint(5, 5), 3)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(src)
	senseMap.Calculate()

	if !senseMap.RemoveSenseSource(src) {
		t.Fatal("RemoveSenseSource must report removal")
	}
	if senseMap.RemoveSenseSource(src) {
		t.Error("second removal must report nothing removed")
	}
	if src.resistanceView != nil {
		t.Error("removal must detach the resistance view")
	}

	senseMap.Calculate()
	if got := len(senseMap.CurrentSenseMap()); got != 0 {
		t.Errorf("CurrentSenseMap size = %d, want 0 after removing the source", got)
	}
	if got := len(senseMap.NewlyOutOfSenseMap()); got == 0 {
		t.Error("previously lit positions must be newly out")
	}
}

func TestSenseMap_EventsFire(t *testing.T) {
	resistance := zeroResistance(10, 10)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(5, 5), 2))

	resets, recalculations := 0, 0
	senseMap.SenseMapReset = func() { resets++ }
	senseMap.Recalculated = func() { recalculations++ }

	senseMap.Calculate()
	senseMap.Calculate()
	if resets != 2 || recalculations != 2 {
		t.Errorf("resets/recalculations = %d/%d, want 2/2", resets, recalculations)
	}
}

func TestSenseMap_ResizeRebuildsResultView(t *testing.T) {
	resistance := zeroResistance(10, 10)
	senseMap := NewSenseMap(resistance)
	senseMap.AddSenseSource(newShadowSource(t, geometry.NewPoint(5, 5), 2))
	senseMap.Calculate()

	resizeCalls := 0
	senseMap.ResizeResultView = func(width, height int) geometry.SettableGridView[float64] {
		resizeCalls++
		return geometry.NewArrayView[float64](width, height)
	}

	// Swap in a larger resistance view; its dimensions now disagree with
	// the result view, so the next Reset must rebuild it.
	senseMap.resistanceView = zeroResistance(16, 12)
	senseMap.Calculate()

	if resizeCalls != 1 {
		t.Errorf("resize calls = %d, want 1", resizeCalls)
	}
	if senseMap.ResultView().Width() != 16 || senseMap.ResultView().Height() != 12 {
		t.Errorf("result view = %dx%d, want 16x12",
			senseMap.ResultView().Width(), senseMap.ResultView().Height())
	}
}
