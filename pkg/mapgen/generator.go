package mapgen

import (
	"errors"
	"fmt"
	"iter"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// Canonical component tags shared by the built-in steps.
const (
	TagWallFloor       = "WallFloor"
	TagRooms           = "Rooms"
	TagAreas           = "Areas"
	TagTunnels         = "Tunnels"
	TagMazeConnections = "MazeConnections"
	TagDoors           = "Doors"
)

// Generator collects generation steps and drives them against a context.
type Generator struct {
	// Context is the map under construction. ConfigAndGenerateSafe
	// replaces it with a fresh one on every attempt.
	Context *GenerationContext

	steps []Step
}

// NewGenerator creates a generator for a map of the given size.
func NewGenerator(width, height int) *Generator {
	return &Generator{Context: NewGenerationContext(width, height)}
}

// AddComponent stores a component in the generator's context.
func (g *Generator) AddComponent(value any, tag string) error {
	return g.Context.Add(value, tag)
}

// AddStep appends a step to the configuration. Steps run in the order they
// were added.
func (g *Generator) AddStep(step Step) *Generator {
	g.steps = append(g.steps, step)
	return g
}

// Steps returns the configured steps in execution order.
func (g *Generator) Steps() []Step {
	return g.steps
}

// Generate drives every step to completion, in order. A step returning
// ErrRegenerateMap propagates to the caller; ConfigAndGenerateSafe handles
// it with retries.
func (g *Generator) Generate() error {
	for _, step := range g.steps {
		if err := Perform(step, g.Context); err != nil {
			return err
		}
	}
	return nil
}

// ConfigAndGenerateSafe clears the generator, applies the configuration
// function, and generates, retrying from a fresh context whenever a step
// signals ErrRegenerateMap. maxAttempts < 0 retries without limit; on
// exhaustion the last signal is wrapped in a MapGenerationFailedError.
func (g *Generator) ConfigAndGenerateSafe(config func(g *Generator) error, maxAttempts int) error {
	attempts := 0
	for {
		g.clear()
		if err := config(g); err != nil {
			return err
		}
		err := g.Generate()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrRegenerateMap) {
			return err
		}
		attempts++
		if maxAttempts >= 0 && attempts >= maxAttempts {
			return &MapGenerationFailedError{Attempts: attempts, Err: err}
		}
	}
}

// Stages returns a lazy iterator over every stage of every configured step,
// each stage name prefixed with its step name. Errors are delivered as the
// final element.
func (g *Generator) Stages() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, step := range g.steps {
			for stage, err := range Stages(step, g.Context) {
				if err != nil {
					yield("", err)
					return
				}
				if !yield(fmt.Sprintf("%s:%s", step.Name(), stage), nil) {
					return
				}
			}
		}
	}
}

// ConfigAndGetStagesSafe applies the configuration and returns a stage
// iterator with the same retry semantics as ConfigAndGenerateSafe: a
// regenerate signal restarts the stages from a fresh context, and
// exhausting maxAttempts delivers a MapGenerationFailedError as the final
// element.
func (g *Generator) ConfigAndGetStagesSafe(config func(g *Generator) error, maxAttempts int) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		attempts := 0
		for {
			g.clear()
			if err := config(g); err != nil {
				yield("", err)
				return
			}
			regenerated := false
			for stage, err := range g.Stages() {
				if err == nil {
					if !yield(stage, nil) {
						return
					}
					continue
				}
				if !errors.Is(err, ErrRegenerateMap) {
					yield("", err)
					return
				}
				attempts++
				if maxAttempts >= 0 && attempts >= maxAttempts {
					yield("", &MapGenerationFailedError{Attempts: attempts, Err: err})
					return
				}
				regenerated = true
				break
			}
			if !regenerated {
				return
			}
		}
	}
}

func (g *Generator) clear() {
	g.Context = NewGenerationContext(g.Context.Width(), g.Context.Height())
	g.steps = nil
}

// wallFloorView fetches the map's passability grid, creating a wall-filled
// one when absent. True is floor, false is wall.
func wallFloorView(ctx *GenerationContext, tag string) geometry.SettableGridView[bool] {
	return GetFirstOrNew[geometry.SettableGridView[bool]](ctx, func() geometry.SettableGridView[bool] {
		return geometry.NewArrayView[bool](ctx.Width(), ctx.Height())
	}, tag)
}

// areaList fetches a tagged area list, creating an empty one when absent.
func areaList(ctx *GenerationContext, tag string) *ItemList[*area.Area] {
	return GetFirstOrNew[*ItemList[*area.Area]](ctx, NewItemList[*area.Area], tag)
}
