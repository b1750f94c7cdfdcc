package mapgen

import (
	"math/rand"

	"warren/pkg/engine/geometry"
)

// RandomViewFill fills the map with random floor cells, typically as the
// seed state for cellular automata smoothing.
type RandomViewFill struct {
	// WallFloorTag is the tag of the grid view to fill.
	WallFloorTag string
	// FillProbability is the percent chance for each cell to become floor.
	FillProbability float64
	// ExcludePerimeterPoints leaves the map's outer edge untouched.
	ExcludePerimeterPoints bool
	// FillsBetweenPauses inserts a stage boundary every N cells filled.
	// Zero fills the whole view in one stage.
	FillsBetweenPauses int
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewRandomViewFill creates the step with the usual defaults: 40% fill,
// perimeter excluded.
func NewRandomViewFill() *RandomViewFill {
	return &RandomViewFill{
		WallFloorTag:           TagWallFloor,
		FillProbability:        40,
		ExcludePerimeterPoints: true,
	}
}

// Name identifies the step.
func (s *RandomViewFill) Name() string {
	return "RandomViewFill"
}

// RequiredComponents lists the components the step needs up front.
func (s *RandomViewFill) RequiredComponents() []ComponentRequirement {
	return nil
}

// Run randomizes every eligible cell, pausing on the configured cadence.
func (s *RandomViewFill) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.FillProbability < 0 || s.FillProbability > 100 {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "FillProbability",
			Message: "must be a percentage in [0, 100]"}
	}

	rng := rngOrGlobal(s.RNG)
	wallFloor := wallFloorView(ctx, s.WallFloorTag)

	minX, minY := 0, 0
	maxX, maxY := ctx.Width(), ctx.Height()
	if s.ExcludePerimeterPoints {
		minX, minY = 1, 1
		maxX, maxY = ctx.Width()-1, ctx.Height()-1
	}

	filled := 0
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			wallFloor.Set(geometry.NewPoint(x, y), PercentageCheck(rng, s.FillProbability))
			filled++
			if s.FillsBetweenPauses > 0 && filled%s.FillsBetweenPauses == 0 {
				if !yield("fill") {
					return nil
				}
			}
		}
	}
	yield("fill")
	return nil
}
