package mapgen

import (
	"testing"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

func TestItemList_TracksProducingStep(t *testing.T) {
	l := NewItemList[geometry.Rectangle]()
	l.Add(geometry.NewRectangle(0, 0, 2, 2), "first")
	l.Add(geometry.NewRectangle(5, 5, 2, 2), "second")

	if l.Count() != 2 {
		t.Fatalf("Count = %d, want 2", l.Count())
	}
	if l.StepFor(0) != "first" || l.StepFor(1) != "second" {
		t.Errorf("producers = %q, %q", l.StepFor(0), l.StepFor(1))
	}

	l.RemoveFunc(func(r geometry.Rectangle) bool { return r.MinExtent.X == 0 })
	if l.Count() != 1 || l.StepFor(0) != "second" {
		t.Error("RemoveFunc must keep items and producers aligned")
	}
}

func TestItemList_RemoveItem(t *testing.T) {
	l := NewItemList[geometry.Rectangle]()
	r := geometry.NewRectangle(0, 0, 2, 2)
	l.Add(r, "step")
	if !RemoveItem(l, r) {
		t.Fatal("RemoveItem must report removal")
	}
	if RemoveItem(l, r) {
		t.Error("second RemoveItem must report nothing removed")
	}
}

func TestItemList_AppendAllPreservesProducers(t *testing.T) {
	base := NewItemList[*area.Area]()
	base.Add(area.NewArea(geometry.NewPoint(0, 0)), "base")
	other := NewItemList[*area.Area]()
	other.Add(area.NewArea(geometry.NewPoint(1, 1)), "other")

	base.AppendAll(other)
	if base.Count() != 2 {
		t.Fatalf("Count = %d, want 2", base.Count())
	}
	if base.StepFor(1) != "other" {
		t.Errorf("appended producer = %q, want other", base.StepFor(1))
	}
}

func TestDoorList_BucketsBySide(t *testing.T) {
	doors := NewDoorList()
	room := geometry.NewRectangle(4, 4, 3, 3)
	doors.AddDoor("step", room, geometry.NewPoint(5, 3))  // above: Up side of ring
	doors.AddDoor("step", room, geometry.NewPoint(5, 7))  // below: Down side
	doors.AddDoor("other", room, geometry.NewPoint(3, 5)) // left: Left side

	record := doors.DoorsFor(room)
	if record == nil {
		t.Fatal("room has no door record")
	}
	if len(record.Doors()) != 3 {
		t.Fatalf("door count = %d, want 3", len(record.Doors()))
	}
	if got := record.DoorsOnSide(geometry.Up); len(got) != 1 || got[0] != geometry.NewPoint(5, 3) {
		t.Errorf("Up doors = %v", got)
	}
	if got := record.DoorsOnSide(geometry.Down); len(got) != 1 || got[0] != geometry.NewPoint(5, 7) {
		t.Errorf("Down doors = %v", got)
	}
	if got := record.DoorsOnSide(geometry.Left); len(got) != 1 || got[0] != geometry.NewPoint(3, 5) {
		t.Errorf("Left doors = %v", got)
	}
	if record.StepFor(geometry.NewPoint(3, 5)) != "other" {
		t.Errorf("producer = %q, want other", record.StepFor(geometry.NewPoint(3, 5)))
	}
	if len(doors.Rooms()) != 1 || doors.Rooms()[0] != room {
		t.Errorf("Rooms = %v, want [%v]", doors.Rooms(), room)
	}
}

func TestRectangleEdgePositionsList_ExcludesCorners(t *testing.T) {
	edges := NewRectangleEdgePositionsList(geometry.NewRectangle(2, 2, 4, 3))
	up := edges.PositionsOnSide(geometry.Up)
	if len(up) != 2 {
		t.Fatalf("Up side positions = %v, want the 2 non-corner cells", up)
	}
	for _, p := range up {
		if p.Y != 2 || p.X == 2 || p.X == 5 {
			t.Errorf("unexpected Up side position %v", p)
		}
	}
	left := edges.PositionsOnSide(geometry.Left)
	if len(left) != 1 || left[0] != geometry.NewPoint(2, 3) {
		t.Errorf("Left side positions = %v, want [(2,3)]", left)
	}

	if !edges.Remove(geometry.NewPoint(2, 3)) {
		t.Fatal("Remove must report removal")
	}
	if len(edges.PositionsOnSide(geometry.Left)) != 0 {
		t.Error("removed position still present")
	}
	if edges.Remove(geometry.NewPoint(2, 3)) {
		t.Error("second Remove must report nothing removed")
	}
}

func TestRectanglesToAreas_TranslatesRooms(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	rooms := GetFirstOrNew[*ItemList[geometry.Rectangle]](ctx, NewItemList[geometry.Rectangle], TagRooms)
	rooms.Add(geometry.NewRectangle(2, 3, 2, 2), "test")

	step := NewRectanglesToAreas()
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	areas, _ := GetFirst[*ItemList[*area.Area]](ctx, TagAreas)
	if areas.Count() != 1 {
		t.Fatalf("area count = %d, want 1", areas.Count())
	}
	want := area.NewArea(
		geometry.NewPoint(2, 3), geometry.NewPoint(3, 3),
		geometry.NewPoint(2, 4), geometry.NewPoint(3, 4))
	if !areas.At(0).Matches(want) {
		t.Errorf("translated area = %v, want %v", areas.At(0).Points(), want.Points())
	}
}

func TestRectanglesToAreas_RemovesSourceWhenAsked(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	rooms := GetFirstOrNew[*ItemList[geometry.Rectangle]](ctx, NewItemList[geometry.Rectangle], TagRooms)
	rooms.Add(geometry.NewRectangle(2, 3, 2, 2), "test")

	step := NewRectanglesToAreas()
	step.RemoveSourceComponent = true
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if HasComponent[*ItemList[geometry.Rectangle]](ctx, TagRooms) {
		t.Error("source component must be removed")
	}
}

func TestRemoveDuplicatePoints_StripsOverlap(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	keep := areaList(ctx, TagAreas)
	keep.Add(area.NewArea(geometry.NewPoint(1, 1), geometry.NewPoint(2, 1)), "test")
	strip := areaList(ctx, TagTunnels)
	strip.Add(area.NewArea(geometry.NewPoint(2, 1), geometry.NewPoint(3, 1)), "test")
	strip.Add(area.NewArea(geometry.NewPoint(1, 1)), "test")

	step := NewRemoveDuplicatePoints(TagAreas, TagTunnels)
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	if strip.Count() != 1 {
		t.Fatalf("modified list count = %d, want 1 (empty area dropped)", strip.Count())
	}
	want := area.NewArea(geometry.NewPoint(3, 1))
	if !strip.At(0).Matches(want) {
		t.Errorf("stripped area = %v, want %v", strip.At(0).Points(), want.Points())
	}
}

func TestRemoveDuplicatePoints_SameTagRejected(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	areaList(ctx, TagAreas)
	step := NewRemoveDuplicatePoints(TagAreas, TagAreas)
	if err := Perform(step, ctx); err == nil {
		t.Error("identical list tags must fail")
	}
}

func TestAppendAreaLists_MergesAndRemoves(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	base := areaList(ctx, TagTunnels)
	base.Add(area.NewArea(geometry.NewPoint(1, 1)), "maze")
	extra := areaList(ctx, TagMazeConnections)
	extra.Add(area.NewArea(geometry.NewPoint(5, 5)), "connector")

	step := NewAppendAreaLists(TagTunnels, TagMazeConnections)
	step.RemoveAppendedComponent = true
	if err := Perform(step, ctx); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	if base.Count() != 2 {
		t.Errorf("base count = %d, want 2", base.Count())
	}
	if base.StepFor(1) != "connector" {
		t.Errorf("appended producer = %q, want connector", base.StepFor(1))
	}
	if HasComponent[*ItemList[*area.Area]](ctx, TagMazeConnections) {
		t.Error("appended component must be removed")
	}
}

func TestAppendAreaLists_SameTagRejected(t *testing.T) {
	ctx := NewGenerationContext(20, 20)
	areaList(ctx, TagTunnels)
	step := NewAppendAreaLists(TagTunnels, TagTunnels)
	if err := Perform(step, ctx); err == nil {
		t.Error("identical list tags must fail")
	}
}
