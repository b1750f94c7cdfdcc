package mapgen

import (
	"math"
	"math/rand"

	"warren/pkg/engine/geometry"
)

// RoomsGeneration carves rectangular rooms into the map. Rooms get odd
// dimensions and odd positions with a three-cell margin from the map edge,
// and never touch floor carved earlier, including floor from prior steps.
type RoomsGeneration struct {
	// WallFloorTag is the tag of the grid view to carve.
	WallFloorTag string
	// RoomsTag is the tag of the rectangle list to record rooms in.
	RoomsTag string
	// MinRooms and MaxRooms bound the number of rooms attempted.
	MinRooms int
	MaxRooms int
	// RoomMinSize and RoomMaxSize bound the base room size before ratios.
	RoomMinSize int
	RoomMaxSize int
	// RoomSizeRatioX and RoomSizeRatioY scale the base size per axis.
	RoomSizeRatioX float64
	RoomSizeRatioY float64
	// MaxCreationAttempts bounds size re-rolls per room slot.
	MaxCreationAttempts int
	// MaxPlacementAttempts bounds position re-rolls per room size.
	MaxPlacementAttempts int
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewRoomsGeneration creates the step with sensible defaults.
func NewRoomsGeneration() *RoomsGeneration {
	return &RoomsGeneration{
		WallFloorTag:         TagWallFloor,
		RoomsTag:             TagRooms,
		MinRooms:             4,
		MaxRooms:             10,
		RoomMinSize:          3,
		RoomMaxSize:          7,
		RoomSizeRatioX:       1.0,
		RoomSizeRatioY:       1.0,
		MaxCreationAttempts:  10,
		MaxPlacementAttempts: 10,
	}
}

// Name identifies the step.
func (s *RoomsGeneration) Name() string {
	return "RoomsGeneration"
}

// RequiredComponents lists the components the step needs up front.
func (s *RoomsGeneration) RequiredComponents() []ComponentRequirement {
	return nil
}

// Run places the rooms, one stage per room carved.
func (s *RoomsGeneration) Run(ctx *GenerationContext, yield func(string) bool) error {
	if err := s.validate(); err != nil {
		return err
	}

	rng := rngOrGlobal(s.RNG)
	wallFloor := wallFloorView(ctx, s.WallFloorTag)
	rooms := GetFirstOrNew[*ItemList[geometry.Rectangle]](ctx, NewItemList[geometry.Rectangle], s.RoomsTag)

	roomCount := RandRange(rng, s.MinRooms, s.MaxRooms)
	for slot := 0; slot < roomCount; slot++ {
		for attempt := 0; attempt < s.MaxCreationAttempts; attempt++ {
			width, height := s.rollRoomSize(rng)
			room, placed := s.placeRoom(ctx, rng, wallFloor, width, height)
			if !placed {
				continue
			}
			for _, p := range room.Positions() {
				wallFloor.Set(p, true)
			}
			rooms.Add(room, s.Name())
			if !yield("room") {
				return nil
			}
			break
		}
	}
	return nil
}

// rollRoomSize draws a base size, applies the axis ratios, jitters one
// axis, and normalizes both dimensions to odd values of at least
// RoomMinSize.
func (s *RoomsGeneration) rollRoomSize(rng *rand.Rand) (int, int) {
	roomSize := RandRange(rng, s.RoomMinSize, s.RoomMaxSize)
	width := int(math.Round(float64(roomSize) * s.RoomSizeRatioX))
	height := int(math.Round(float64(roomSize) * s.RoomSizeRatioY))

	if adjustmentBase := roomSize / 4; adjustmentBase > 0 {
		adjustment := RandRange(rng, -adjustmentBase, adjustmentBase)
		if PercentageCheck(rng, 50) {
			width += int(math.Round(float64(adjustment) * s.RoomSizeRatioX))
		} else {
			height += int(math.Round(float64(adjustment) * s.RoomSizeRatioY))
		}
	}

	width = max(width, s.RoomMinSize)
	height = max(height, s.RoomMinSize)
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return width, height
}

// placeRoom tries to position a room of the given size. Positions are odd
// with a three-cell interior margin; a room whose three-cell expansion
// touches existing floor is rejected.
func (s *RoomsGeneration) placeRoom(ctx *GenerationContext, rng *rand.Rand, wallFloor geometry.GridView[bool], width, height int) (geometry.Rectangle, bool) {
	for attempt := 0; attempt < s.MaxPlacementAttempts; attempt++ {
		x, okX := randOddInRange(rng, 3, ctx.Width()-width-3)
		y, okY := randOddInRange(rng, 3, ctx.Height()-height-3)
		if !okX || !okY {
			return geometry.Rectangle{}, false
		}

		room := geometry.NewRectangle(x, y, width, height)
		conflict := false
		for _, p := range room.Expand(3, 3).Positions() {
			if wallFloor.Get(p) {
				conflict = true
				break
			}
		}
		if !conflict {
			return room, true
		}
	}
	return geometry.Rectangle{}, false
}

func (s *RoomsGeneration) validate() error {
	switch {
	case s.MinRooms > s.MaxRooms:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "MinRooms",
			Message: "must not exceed MaxRooms"}
	case s.RoomMinSize > s.RoomMaxSize:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "RoomMinSize",
			Message: "must not exceed RoomMaxSize"}
	case s.RoomSizeRatioX <= 0:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "RoomSizeRatioX",
			Message: "must be positive"}
	case s.RoomSizeRatioY <= 0:
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "RoomSizeRatioY",
			Message: "must be positive"}
	}
	return nil
}
