package mapgen

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// MazeGeneration fills the wall space between rooms with winding one-cell
// corridors. Crawlers depth-first carve from odd-coordinate seeds,
// backtracking when boxed in; each crawler's carved cells become one tunnel
// area.
type MazeGeneration struct {
	// WallFloorTag is the tag of the grid view to carve.
	WallFloorTag string
	// TunnelsTag is the tag of the area list to record tunnels in.
	TunnelsTag string
	// CrawlerChangeDirectionImprovement is added to a crawler's chance of
	// turning each time it keeps its heading, in percent.
	CrawlerChangeDirectionImprovement int
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewMazeGeneration creates the step with sensible defaults.
func NewMazeGeneration() *MazeGeneration {
	return &MazeGeneration{
		WallFloorTag:                      TagWallFloor,
		TunnelsTag:                        TagTunnels,
		CrawlerChangeDirectionImprovement: 10,
	}
}

// Name identifies the step.
func (s *MazeGeneration) Name() string {
	return "MazeGeneration"
}

// RequiredComponents lists the components the step needs up front.
func (s *MazeGeneration) RequiredComponents() []ComponentRequirement {
	return nil
}

// Run carves the maze, one stage per crawler finished.
func (s *MazeGeneration) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.CrawlerChangeDirectionImprovement < 0 || s.CrawlerChangeDirectionImprovement > 100 {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "CrawlerChangeDirectionImprovement",
			Message: "must be a percentage in [0, 100]"}
	}

	rng := rngOrGlobal(s.RNG)
	wallFloor := wallFloorView(ctx, s.WallFloorTag)
	tunnels := areaList(ctx, s.TunnelsTag)

	for {
		seed, found := findEmptySeed(ctx, wallFloor, rng)
		if !found {
			break
		}
		carved := s.runCrawler(ctx, rng, wallFloor, seed)
		if carved.Count() > 0 {
			tunnels.Add(carved, s.Name())
		}
		if !yield("crawler") {
			return nil
		}
	}
	return nil
}

// runCrawler depth-first carves corridor cells from the seed, backtracking
// along its path stack when no direction stays one cell wide.
func (s *MazeGeneration) runCrawler(ctx *GenerationContext, rng *rand.Rand, wallFloor geometry.SettableGridView[bool], seed geometry.Point) *area.Area {
	carved := area.NewArea()
	path := stack.New[geometry.Point]()
	path.Push(seed)

	startedCrawler := true
	facing := geometry.DirNone
	percentChangeDirection := 0

	for path.Size() > 0 {
		current := path.Peek()
		wallFloor.Set(current, true)
		carved.Add(current)

		valids := validCrawlDirections(ctx, wallFloor, current)
		if len(valids) == 0 {
			path.Pop()
			continue
		}

		if startedCrawler || !containsDirection(valids, facing) {
			facing = valids[rng.Intn(len(valids))]
			percentChangeDirection = 0
			startedCrawler = false
		} else if PercentageCheck(rng, float64(percentChangeDirection)) {
			facing = valids[rng.Intn(len(valids))]
			percentChangeDirection = 0
		} else {
			percentChangeDirection += s.CrawlerChangeDirectionImprovement
		}

		path.Push(facing.Translate(current))
	}
	return carved
}

// validCrawlDirections returns the cardinal directions whose target cell is
// interior and surrounded by wall everywhere except back toward the
// crawler, keeping the carved corridor one cell wide.
func validCrawlDirections(ctx *GenerationContext, wallFloor geometry.GridView[bool], current geometry.Point) []geometry.Direction {
	var valids []geometry.Direction
	for _, dir := range geometry.AdjacencyCardinals.DirectionsOfNeighborsClockwise() {
		next := dir.Translate(current)
		if next.X < 1 || next.X >= ctx.Width()-1 || next.Y < 1 || next.Y >= ctx.Height()-1 {
			continue
		}
		if wallFloor.Get(next) {
			continue
		}
		source := dir.Opposite()
		open := false
		for _, around := range geometry.AdjacencyEightWay.DirectionsOfNeighbors() {
			if around == source {
				continue
			}
			neighbor := around.Translate(next)
			if !wallFloor.Contains(neighbor) || wallFloor.Get(neighbor) {
				open = true
				break
			}
		}
		if !open {
			valids = append(valids, dir)
		}
	}
	return valids
}

// findEmptySeed locates an odd-coordinate, non-edge wall cell whose
// eight-way neighbors are all wall and in bounds. The first hundred tries
// are random; after that a deterministic scan takes over.
func findEmptySeed(ctx *GenerationContext, wallFloor geometry.GridView[bool], rng *rand.Rand) (geometry.Point, bool) {
	for i := 0; i < 100; i++ {
		x, okX := randOddInRange(rng, 1, ctx.Width()-1)
		y, okY := randOddInRange(rng, 1, ctx.Height()-1)
		if !okX || !okY {
			break
		}
		p := geometry.NewPoint(x, y)
		if isEmptySeed(wallFloor, p) {
			return p, true
		}
	}
	for y := 1; y < ctx.Height()-1; y += 2 {
		for x := 1; x < ctx.Width()-1; x += 2 {
			p := geometry.NewPoint(x, y)
			if isEmptySeed(wallFloor, p) {
				return p, true
			}
		}
	}
	return geometry.Point{}, false
}

func isEmptySeed(wallFloor geometry.GridView[bool], p geometry.Point) bool {
	if wallFloor.Get(p) {
		return false
	}
	for _, neighbor := range geometry.AdjacencyEightWay.Neighbors(p) {
		if !wallFloor.Contains(neighbor) || wallFloor.Get(neighbor) {
			return false
		}
	}
	return true
}

func containsDirection(dirs []geometry.Direction, dir geometry.Direction) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}
