package mapgen

import "warren/pkg/engine/geometry"

// RectangleGenerator fills the map with a single rectangular room: every
// interior cell becomes floor and the perimeter stays wall.
type RectangleGenerator struct {
	// WallFloorTag is the tag of the grid view to carve.
	WallFloorTag string
}

// NewRectangleGenerator creates the step with the canonical tag.
func NewRectangleGenerator() *RectangleGenerator {
	return &RectangleGenerator{WallFloorTag: TagWallFloor}
}

// Name identifies the step.
func (s *RectangleGenerator) Name() string {
	return "RectangleGenerator"
}

// RequiredComponents lists the components the step needs up front.
func (s *RectangleGenerator) RequiredComponents() []ComponentRequirement {
	return nil
}

// Run carves the rectangle in a single stage.
func (s *RectangleGenerator) Run(ctx *GenerationContext, yield func(string) bool) error {
	wallFloor := wallFloorView(ctx, s.WallFloorTag)
	for y := 0; y < ctx.Height(); y++ {
		for x := 0; x < ctx.Width(); x++ {
			interior := x > 0 && x < ctx.Width()-1 && y > 0 && y < ctx.Height()-1
			wallFloor.Set(geometry.NewPoint(x, y), interior)
		}
	}
	yield("rectangle")
	return nil
}
