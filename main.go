package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"warren/pkg/engine/geometry"
	"warren/pkg/game/devtools"
	"warren/pkg/mapgen"
	"warren/pkg/sense"
)

// initGettext configures translations for user-facing strings.
func initGettext() {
	gotext.Configure("mo", "en_GB", "default")
}

func main() {
	width := flag.Int("width", 60, "map width in cells")
	height := flag.Int("height", 30, "map height in cells")
	algo := flag.String("algo", "dungeon", "generation algorithm: dungeon, cave or rooms")
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	dump := flag.String("dump", "", "also write a debug dump to this file")
	light := flag.Bool("light", true, "overlay a light source on the map")
	flag.Parse()

	initGettext()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	generator := mapgen.NewGenerator(*width, *height)
	err := generator.ConfigAndGenerateSafe(func(g *mapgen.Generator) error {
		steps, err := stepsFor(*algo, rng)
		if err != nil {
			return err
		}
		for _, step := range steps {
			g.AddStep(step)
		}
		return nil
	}, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", gotext.Get("MAP_GENERATION_FAILED"), err)
		os.Exit(1)
	}

	ctx := generator.Context
	if !devtools.FitsTerminal(ctx.Width(), ctx.Height()) {
		fmt.Println(gotext.Get("MAP_LARGER_THAN_TERMINAL"))
	}

	var lightView geometry.GridView[float64]
	maxLight := 0.0
	if *light {
		lightView, maxLight = calculateLight(ctx, rng)
	}
	devtools.FprintMap(os.Stdout, ctx, lightView, maxLight)

	if *dump != "" {
		if err := devtools.DumpMapToFile(*dump, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", gotext.Get("MAP_DUMP_FAILED"), err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", gotext.Get("MAP_DUMP_WRITTEN"), *dump)
	}
}

// stepsFor maps an algorithm name to its step configuration.
func stepsFor(algo string, rng *rand.Rand) ([]mapgen.Step, error) {
	switch algo {
	case "dungeon":
		return mapgen.DungeonMazeSteps(rng), nil
	case "cave":
		return mapgen.CellularAutomataCaveSteps(rng), nil
	case "rooms":
		return mapgen.BasicRandomRoomsSteps(rng), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algo)
	}
}

// calculateLight drops a shadowcasting light on a floor cell and returns
// the computed field. The resistance view treats walls as fully blocking.
func calculateLight(ctx *mapgen.GenerationContext, rng *rand.Rand) (geometry.GridView[float64], float64) {
	wallFloor, ok := mapgen.GetFirst[geometry.GridView[bool]](ctx, mapgen.TagWallFloor)
	if !ok {
		return nil, 0
	}

	resistance := geometry.NewArrayView[float64](ctx.Width(), ctx.Height())
	var floors []geometry.Point
	for y := 0; y < ctx.Height(); y++ {
		for x := 0; x < ctx.Width(); x++ {
			p := geometry.NewPoint(x, y)
			if wallFloor.Get(p) {
				floors = append(floors, p)
			} else {
				resistance.Set(p, 1)
			}
		}
	}
	if len(floors) == 0 {
		return nil, 0
	}

	const intensity = 1.0
	position := floors[rng.Intn(len(floors))]
	src, err := sense.NewRecursiveShadowcastingSource(position, 8, geometry.DistanceChebyshev, intensity)
	if err != nil {
		return nil, 0
	}

	senseMap := sense.NewSenseMap(resistance)
	senseMap.AddSenseSource(src)
	senseMap.Calculate()
	return senseMap.ResultView(), intensity
}
