package mapgen

import "warren/pkg/engine/geometry"

// CellularAutomataAreaGeneration smooths a randomly filled map into organic
// cave shapes by repeatedly applying neighbor-count rules, then walls off
// the outer perimeter.
type CellularAutomataAreaGeneration struct {
	// WallFloorTag is the tag of the grid view to smooth.
	WallFloorTag string
	// AreaAdjacencyRule is the connectivity the produced caves are meant
	// to be read with by downstream area finding.
	AreaAdjacencyRule geometry.AdjacencyRule
	// TotalIterations is the number of smoothing passes.
	TotalIterations int
	// CutoffBigAreaFill is the number of initial passes that also fill
	// large open regions; must not exceed TotalIterations.
	CutoffBigAreaFill int
}

// NewCellularAutomataAreaGeneration creates the step with the classic
// smoothing parameters.
func NewCellularAutomataAreaGeneration() *CellularAutomataAreaGeneration {
	return &CellularAutomataAreaGeneration{
		WallFloorTag:      TagWallFloor,
		AreaAdjacencyRule: geometry.AdjacencyCardinals,
		TotalIterations:   7,
		CutoffBigAreaFill: 4,
	}
}

// Name identifies the step.
func (s *CellularAutomataAreaGeneration) Name() string {
	return "CellularAutomataAreaGeneration"
}

// RequiredComponents lists the components the step needs up front.
func (s *CellularAutomataAreaGeneration) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run applies the smoothing passes, one stage per iteration.
func (s *CellularAutomataAreaGeneration) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.TotalIterations <= 0 {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "TotalIterations",
			Message: "must be positive"}
	}
	if s.CutoffBigAreaFill > s.TotalIterations {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "CutoffBigAreaFill",
			Message: "must not exceed TotalIterations"}
	}

	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)

	for i := 0; i < s.TotalIterations; i++ {
		snapshot := geometry.Snapshot[bool](wallFloor)
		for y := 1; y < ctx.Height()-1; y++ {
			for x := 1; x < ctx.Width()-1; x++ {
				p := geometry.NewPoint(x, y)
				nearWalls := countWallsNear(snapshot, p, 1)
				if i < s.CutoffBigAreaFill {
					wallFloor.Set(p, nearWalls < 5 && countWallsNear(snapshot, p, 2) > 2)
				} else {
					wallFloor.Set(p, nearWalls < 5)
				}
			}
		}
		if !yield("smooth") {
			return nil
		}
	}

	// Guarantee enclosure regardless of what smoothing did at the edges.
	for x := 0; x < ctx.Width(); x++ {
		wallFloor.Set(geometry.NewPoint(x, 0), false)
		wallFloor.Set(geometry.NewPoint(x, ctx.Height()-1), false)
	}
	for y := 0; y < ctx.Height(); y++ {
		wallFloor.Set(geometry.NewPoint(0, y), false)
		wallFloor.Set(geometry.NewPoint(ctx.Width()-1, y), false)
	}
	yield("enclose")
	return nil
}

// countWallsNear counts wall cells within the square radius around p,
// excluding p itself. Out-of-bounds cells are not counted.
func countWallsNear(view geometry.GridView[bool], p geometry.Point, radius int) int {
	count := 0
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbor := p.Translate(dx, dy)
			if view.Contains(neighbor) && !view.Get(neighbor) {
				count++
			}
		}
	}
	return count
}
