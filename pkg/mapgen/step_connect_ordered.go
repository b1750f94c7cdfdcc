package mapgen

import (
	"math/rand"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// OrderedMapAreaConnection carves one tunnel between each consecutive pair
// of areas in a list, optionally shuffling the order first.
type OrderedMapAreaConnection struct {
	// AreasTag is the tag of the area list to connect.
	AreasTag string
	// WallFloorTag is the tag of the grid view to carve tunnels into.
	WallFloorTag string
	// TunnelsTag is the tag of the area list to record carved tunnels in.
	TunnelsTag string
	// RandomizeOrder shuffles the areas before chaining them.
	RandomizeOrder bool
	// ConnectionPointSelector chooses the endpoints of each tunnel; nil
	// uses random selection.
	ConnectionPointSelector ConnectionPointSelector
	// TunnelCreator carves the corridors; nil uses an L-shaped corridor.
	TunnelCreator TunnelCreator
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewOrderedMapAreaConnection creates the step with sensible defaults.
func NewOrderedMapAreaConnection() *OrderedMapAreaConnection {
	return &OrderedMapAreaConnection{
		AreasTag:       TagAreas,
		WallFloorTag:   TagWallFloor,
		TunnelsTag:     TagTunnels,
		RandomizeOrder: true,
	}
}

// Name identifies the step.
func (s *OrderedMapAreaConnection) Name() string {
	return "OrderedMapAreaConnection"
}

// RequiredComponents lists the components the step needs up front.
func (s *OrderedMapAreaConnection) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.AreasTag),
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run chains the areas together, one stage per tunnel carved.
func (s *OrderedMapAreaConnection) Run(ctx *GenerationContext, yield func(string) bool) error {
	areas, _ := GetFirst[*ItemList[*area.Area]](ctx, s.AreasTag)
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)
	tunnels := areaList(ctx, s.TunnelsTag)

	rng := rngOrGlobal(s.RNG)
	selector := s.ConnectionPointSelector
	if selector == nil {
		selector = &RandomConnectionPointSelector{RNG: s.RNG}
	}
	creator := s.TunnelCreator
	if creator == nil {
		creator = &HorizontalVerticalTunnelCreator{RNG: s.RNG}
	}

	ordered := append([]*area.Area(nil), areas.Items()...)
	if s.RandomizeOrder {
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	for i := 1; i < len(ordered); i++ {
		pointA, pointB := selector.SelectConnectionPoints(ordered[i], ordered[i-1])
		tunnels.Add(creator.CreateTunnel(wallFloor, pointA, pointB), s.Name())
		if !yield("connection") {
			return nil
		}
	}
	return nil
}
