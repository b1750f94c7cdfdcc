package mapgen

import (
	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// AreaFinder partitions the map's floor into connected areas and records
// them for downstream connection steps.
type AreaFinder struct {
	// WallFloorTag is the tag of the grid view to partition.
	WallFloorTag string
	// AreasTag is the tag of the area list to record components in.
	AreasTag string
	// AdjacencyRule is the connectivity used to join floor cells.
	AdjacencyRule geometry.AdjacencyRule
}

// NewAreaFinder creates the step with the canonical tags and cardinal
// connectivity.
func NewAreaFinder() *AreaFinder {
	return &AreaFinder{
		WallFloorTag:  TagWallFloor,
		AreasTag:      TagAreas,
		AdjacencyRule: geometry.AdjacencyCardinals,
	}
}

// Name identifies the step.
func (s *AreaFinder) Name() string {
	return "AreaFinder"
}

// RequiredComponents lists the components the step needs up front.
func (s *AreaFinder) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run finds the components in a single stage.
func (s *AreaFinder) Run(ctx *GenerationContext, yield func(string) bool) error {
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)
	areas := areaList(ctx, s.AreasTag)
	areas.AddAll(area.MapAreasFor(wallFloor, s.AdjacencyRule), s.Name())
	yield("areas")
	return nil
}
