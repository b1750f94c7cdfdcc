package mapgen

import "warren/pkg/engine/geometry"

// DoorFinder records a door for every floor cell on the wall ring around
// each room, picking up openings carved by any earlier step.
type DoorFinder struct {
	// WallFloorTag is the tag of the grid view to inspect.
	WallFloorTag string
	// RoomsTag is the tag of the rectangle list of rooms to scan.
	RoomsTag string
	// DoorsTag is the tag of the door list to record doors in.
	DoorsTag string
}

// NewDoorFinder creates the step with the canonical tags.
func NewDoorFinder() *DoorFinder {
	return &DoorFinder{
		WallFloorTag: TagWallFloor,
		RoomsTag:     TagRooms,
		DoorsTag:     TagDoors,
	}
}

// Name identifies the step.
func (s *DoorFinder) Name() string {
	return "DoorFinder"
}

// RequiredComponents lists the components the step needs up front.
func (s *DoorFinder) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[geometry.Rectangle]]("ItemList[Rectangle]", s.RoomsTag),
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run scans the rooms, one stage per room.
func (s *DoorFinder) Run(ctx *GenerationContext, yield func(string) bool) error {
	rooms, _ := GetFirst[*ItemList[geometry.Rectangle]](ctx, s.RoomsTag)
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)
	doors := GetFirstOrNew[*DoorList](ctx, NewDoorList, s.DoorsTag)

	for _, room := range rooms.Items() {
		for _, p := range room.Expand(1, 1).PerimeterPositions() {
			if wallFloor.Contains(p) && wallFloor.Get(p) {
				doors.AddDoor(s.Name(), room, p)
			}
		}
		if !yield("room") {
			return nil
		}
	}
	return nil
}
