package mapgen

import (
	"math/rand"
	"testing"

	"warren/pkg/engine/geometry"
)

func TestRoomsGeneration_SingleRoomPlacement(t *testing.T) {
	ctx := NewGenerationContext(40, 30)
	step := NewRoomsGeneration()
	step.MinRooms = 1
	step.MaxRooms = 1
	step.RoomMinSize = 3
	step.RoomMaxSize = 3
	step.RNG = rand.New(rand.NewSource(1))

	if err := Perform(step, ctx); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	rooms, _ := GetFirst[*ItemList[geometry.Rectangle]](ctx, TagRooms)
	if rooms.Count() != 1 {
		t.Fatalf("room count = %d, want 1", rooms.Count())
	}
	room := rooms.At(0)
	if room.Width() != 3 || room.Height() != 3 {
		t.Errorf("room size = %dx%d, want 3x3", room.Width(), room.Height())
	}
	if room.MinExtent.X%2 == 0 || room.MinExtent.Y%2 == 0 {
		t.Errorf("room position %v must have odd coordinates", room.MinExtent)
	}
	if room.MinExtent.X < 3 || room.MinExtent.X >= 40-3-3 {
		t.Errorf("room x = %d outside [3, 34)", room.MinExtent.X)
	}
	if room.MinExtent.Y < 3 || room.MinExtent.Y >= 30-3-3 {
		t.Errorf("room y = %d outside [3, 24)", room.MinExtent.Y)
	}
	if rooms.StepFor(0) != step.Name() {
		t.Errorf("room producer = %q, want %q", rooms.StepFor(0), step.Name())
	}
}

func TestRoomsGeneration_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ctx := NewGenerationContext(60, 40)
		step := NewRoomsGeneration()
		step.RNG = rand.New(rand.NewSource(seed))
		if err := Perform(step, ctx); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		rooms, _ := GetFirst[*ItemList[geometry.Rectangle]](ctx, TagRooms)
		wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, TagWallFloor)
		if rooms.Count() < step.MinRooms {
			// Placement attempts can run out, but the defaults on a 60x40
			// map leave plenty of space.
			t.Errorf("seed %d: room count = %d, want at least %d", seed, rooms.Count(), step.MinRooms)
		}

		items := rooms.Items()
		for i, room := range items {
			if room.Width()%2 == 0 || room.Height()%2 == 0 {
				t.Errorf("seed %d: room %v has even dimensions", seed, room)
			}
			if room.Width() < step.RoomMinSize || room.Height() < step.RoomMinSize {
				t.Errorf("seed %d: room %v below minimum size", seed, room)
			}
			if room.MinExtent.X < 3 || room.MinExtent.Y < 3 ||
				room.MaxExtent.X > 60-4 || room.MaxExtent.Y > 40-4 {
				t.Errorf("seed %d: room %v violates the 3-cell margin", seed, room)
			}
			for _, p := range room.Positions() {
				if !wallFloor.Get(p) {
					t.Errorf("seed %d: room cell %v was not carved", seed, p)
				}
			}
			for j := i + 1; j < len(items); j++ {
				if room.Expand(3, 3).Intersects(items[j]) {
					t.Errorf("seed %d: rooms %v and %v closer than the 3-cell separation", seed, room, items[j])
				}
			}
		}
	}
}

func TestRoomsGeneration_ValidatesParameters(t *testing.T) {
	ctx := NewGenerationContext(40, 30)

	step := NewRoomsGeneration()
	step.MinRooms = 5
	step.MaxRooms = 2
	if err := Perform(step, ctx); err == nil {
		t.Error("MinRooms > MaxRooms must fail")
	}

	step = NewRoomsGeneration()
	step.RoomSizeRatioX = 0
	if err := Perform(step, ctx); err == nil {
		t.Error("zero ratio must fail")
	}

	step = NewRoomsGeneration()
	step.RoomMinSize = 9
	step.RoomMaxSize = 3
	if err := Perform(step, ctx); err == nil {
		t.Error("RoomMinSize > RoomMaxSize must fail")
	}
}
