package unionfind

import "testing"

// joinEvent records one SetsJoined firing.
type joinEvent struct {
	larger  int
	smaller int
}

func TestDisjointSet_UnionSequence(t *testing.T) {
	ds := New(5)
	var events []joinEvent
	ds.SetsJoined = func(larger, smaller int) {
		events = append(events, joinEvent{larger, smaller})
	}

	ds.MakeUnion(0, 1)
	ds.MakeUnion(2, 3)
	ds.MakeUnion(1, 3)

	if ds.Count() != 2 {
		t.Errorf("Count = %d, want 2", ds.Count())
	}
	root := ds.Find(0)
	for _, i := range []int{1, 2, 3} {
		if ds.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d", i, ds.Find(i), root)
		}
	}
	if ds.Find(4) == root {
		t.Error("element 4 must remain in its own set")
	}
	if len(events) != 3 {
		t.Fatalf("join events = %d, want 3", len(events))
	}
	last := events[len(events)-1]
	if last.larger != root {
		t.Errorf("final event larger = %d, want the merged root %d", last.larger, root)
	}
	if ds.InSameSet(last.larger, last.smaller) != true {
		t.Error("joined roots must end in the same set")
	}
}

func TestDisjointSet_RepeatUnionFiresNoEvent(t *testing.T) {
	ds := New(3)
	fired := 0
	ds.SetsJoined = func(_, _ int) { fired++ }
	ds.MakeUnion(0, 1)
	ds.MakeUnion(1, 0)
	ds.MakeUnion(0, 1)
	if fired != 1 {
		t.Errorf("events fired = %d, want 1", fired)
	}
	if ds.Count() != 2 {
		t.Errorf("Count = %d, want 2", ds.Count())
	}
}

func TestDisjointSet_SizesPartition(t *testing.T) {
	ds := New(10)
	ds.MakeUnion(0, 1)
	ds.MakeUnion(2, 3)
	ds.MakeUnion(4, 5)
	ds.MakeUnion(0, 2)
	ds.MakeUnion(4, 9)

	total := 0
	roots := make(map[int]bool)
	for i := 0; i < ds.Size(); i++ {
		root := ds.Find(i)
		if !roots[root] {
			roots[root] = true
			total += ds.sizes[root]
		}
	}
	if total != ds.Size() {
		t.Errorf("sum of root sizes = %d, want %d", total, ds.Size())
	}
	if len(roots) != ds.Count() {
		t.Errorf("distinct roots = %d, want Count = %d", len(roots), ds.Count())
	}
}

func TestDisjointSet_PathCompression(t *testing.T) {
	ds := New(4)
	ds.MakeUnion(0, 1)
	ds.MakeUnion(1, 2)
	ds.MakeUnion(2, 3)
	root := ds.Find(0)
	for i := 0; i < 4; i++ {
		if ds.parents[ds.Find(i)] != ds.Find(i) {
			t.Errorf("root of %d is not its own parent", i)
		}
		if ds.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d", i, ds.Find(i), root)
		}
	}
}

func TestDisjointSetOf_TypedJoin(t *testing.T) {
	ds := NewOf([]string{"a", "b", "c"})
	var larger, smaller string
	ds.SetsJoined = func(l, s string) { larger, smaller = l, s }

	ds.MakeUnion("a", "b")
	if ds.Count() != 2 {
		t.Errorf("Count = %d, want 2", ds.Count())
	}
	if !ds.InSameSet("a", "b") || ds.InSameSet("a", "c") {
		t.Error("typed sets do not match the unions performed")
	}
	if larger == "" || smaller == "" || larger == smaller {
		t.Errorf("join event carried %q/%q", larger, smaller)
	}
	if ds.Find("a") != ds.Find("b") {
		t.Error("Find must agree for joined items")
	}
}
