package mapgen

import (
	"math/rand"

	"warren/pkg/engine/geometry"
)

// RoomDoorConnection opens doorways between rooms and the corridors
// surrounding them. Each room gets doors on a random subset of its sides;
// every door leads through the room's wall onto existing floor.
type RoomDoorConnection struct {
	// RoomsTag is the tag of the rectangle list of rooms to connect.
	RoomsTag string
	// WallFloorTag is the tag of the grid view to carve.
	WallFloorTag string
	// DoorsTag is the tag of the door list to record doors in.
	DoorsTag string
	// MinSidesToConnect and MaxSidesToConnect bound how many sides of each
	// room receive doors; MaxSidesToConnect must be in [1, 4].
	MinSidesToConnect int
	MaxSidesToConnect int
	// CancelSideConnectionSelectChance is the percent chance to drop each
	// eligible side while more than MinSidesToConnect remain.
	CancelSideConnectionSelectChance float64
	// CancelConnectionPlacementChance is the percent chance, rolled after
	// each door carved, to stop placing further doors on that side.
	CancelConnectionPlacementChance float64
	// CancelConnectionPlacementChanceIncrease raises the stop chance after
	// every door carved on a side.
	CancelConnectionPlacementChanceIncrease float64
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewRoomDoorConnection creates the step with sensible defaults.
func NewRoomDoorConnection() *RoomDoorConnection {
	return &RoomDoorConnection{
		RoomsTag:                                TagRooms,
		WallFloorTag:                            TagWallFloor,
		DoorsTag:                                TagDoors,
		MinSidesToConnect:                       1,
		MaxSidesToConnect:                       4,
		CancelSideConnectionSelectChance:        50,
		CancelConnectionPlacementChance:         70,
		CancelConnectionPlacementChanceIncrease: 10,
	}
}

// Name identifies the step.
func (s *RoomDoorConnection) Name() string {
	return "RoomDoorConnection"
}

// RequiredComponents lists the components the step needs up front.
func (s *RoomDoorConnection) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[geometry.Rectangle]]("ItemList[Rectangle]", s.RoomsTag),
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run opens the doors, one stage per room processed. When any room's wall
// ring has already been carved into, the map cannot be connected sensibly
// and the step signals a regenerate.
func (s *RoomDoorConnection) Run(ctx *GenerationContext, yield func(string) bool) error {
	if err := s.validate(); err != nil {
		return err
	}

	rng := rngOrGlobal(s.RNG)
	rooms, _ := GetFirst[*ItemList[geometry.Rectangle]](ctx, s.RoomsTag)
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)
	doors := GetFirstOrNew[*DoorList](ctx, NewDoorList, s.DoorsTag)

	// An upstream step that carved into a room's wall ring invalidates
	// every assumption below.
	for _, room := range rooms.Items() {
		for _, p := range room.Expand(1, 1).PerimeterPositions() {
			if wallFloor.Get(p) {
				return ErrRegenerateMap
			}
		}
	}

	for _, room := range rooms.Items() {
		sides := s.selectSides(rng, candidateDoorSides(ctx, wallFloor, room))
		for _, side := range sides {
			s.placeDoorsOnSide(rng, wallFloor, doors, room, side)
		}
		if !yield("room") {
			return nil
		}
	}
	return nil
}

// doorSide pairs a side direction with its remaining candidate wall cells.
type doorSide struct {
	direction  geometry.Direction
	candidates []geometry.Point
}

// candidateDoorSides finds, for each side of the room, the wall cells that
// could open onto existing floor: the cell beyond the wall must be inside
// the map's inner area and already carved.
func candidateDoorSides(ctx *GenerationContext, wallFloor geometry.GridView[bool], room geometry.Rectangle) []doorSide {
	edges := NewRectangleEdgePositionsList(room.Expand(1, 1))
	var sides []doorSide
	for _, dir := range geometry.AdjacencyCardinals.DirectionsOfNeighborsClockwise() {
		var candidates []geometry.Point
		for _, wall := range edges.PositionsOnSide(dir) {
			beyond := dir.Translate(wall)
			if beyond.X < 1 || beyond.X >= ctx.Width()-1 || beyond.Y < 1 || beyond.Y >= ctx.Height()-1 {
				continue
			}
			if !wallFloor.Get(wall) && wallFloor.Get(beyond) {
				candidates = append(candidates, wall)
			}
		}
		if len(candidates) > 0 {
			sides = append(sides, doorSide{direction: dir, candidates: candidates})
		}
	}
	return sides
}

// selectSides trims the candidate sides to at most MaxSidesToConnect by
// random removal, then rolls to drop further sides while at least
// MinSidesToConnect remain.
func (s *RoomDoorConnection) selectSides(rng *rand.Rand, sides []doorSide) []doorSide {
	for len(sides) > s.MaxSidesToConnect {
		i := rng.Intn(len(sides))
		sides = append(sides[:i], sides[i+1:]...)
	}
	for i := 0; i < len(sides); {
		if len(sides) > s.MinSidesToConnect && PercentageCheck(rng, s.CancelSideConnectionSelectChance) {
			sides = append(sides[:i], sides[i+1:]...)
			continue
		}
		i++
	}
	return sides
}

// placeDoorsOnSide carves doors from the side's candidates until the
// candidates run out or a placement-cancel roll succeeds. A candidate whose
// surroundings were invalidated by an earlier carve is skipped.
func (s *RoomDoorConnection) placeDoorsOnSide(rng *rand.Rand, wallFloor geometry.SettableGridView[bool], doors *DoorList, room geometry.Rectangle, side doorSide) {
	cancelChance := s.CancelConnectionPlacementChance
	candidates := side.candidates
	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		door := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)

		if countCardinalFloorNeighbors(wallFloor, door) < 2 {
			continue
		}
		wallFloor.Set(door, true)
		doors.AddDoor(s.Name(), room, door)

		if PercentageCheck(rng, cancelChance) {
			return
		}
		cancelChance += s.CancelConnectionPlacementChanceIncrease
	}
}

// countCardinalFloorNeighbors counts the floor cells orthogonally adjacent
// to p. Out-of-bounds neighbors count as wall.
func countCardinalFloorNeighbors(wallFloor geometry.GridView[bool], p geometry.Point) int {
	count := 0
	for _, neighbor := range geometry.AdjacencyCardinals.Neighbors(p) {
		if wallFloor.Contains(neighbor) && wallFloor.Get(neighbor) {
			count++
		}
	}
	return count
}

func (s *RoomDoorConnection) validate() error {
	switch {
	case s.MaxSidesToConnect < 1 || s.MaxSidesToConnect > 4:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "MaxSidesToConnect",
			Message: "must be in [1, 4]"}
	case s.MinSidesToConnect > s.MaxSidesToConnect:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "MinSidesToConnect",
			Message: "must not exceed MaxSidesToConnect"}
	case s.MinSidesToConnect < 0:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "MinSidesToConnect",
			Message: "must not be negative"}
	case s.CancelSideConnectionSelectChance < 0 || s.CancelSideConnectionSelectChance > 100:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "CancelSideConnectionSelectChance",
			Message: "must be a percentage in [0, 100]"}
	case s.CancelConnectionPlacementChance < 0 || s.CancelConnectionPlacementChance > 100:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "CancelConnectionPlacementChance",
			Message: "must be a percentage in [0, 100]"}
	case s.CancelConnectionPlacementChanceIncrease < 0 || s.CancelConnectionPlacementChanceIncrease > 100:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "CancelConnectionPlacementChanceIncrease",
			Message: "must be a percentage in [0, 100]"}
	}
	return nil
}
