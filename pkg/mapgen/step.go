package mapgen

import "iter"

// ComponentRequirement names a component/tag pair a step needs before it can
// run, together with a check resolving it against a context.
type ComponentRequirement struct {
	// Component is the human-readable name of the required type.
	Component string
	// Tag is the required tag, or "" to accept any tag.
	Tag string
	// Present checks whether the context satisfies the requirement.
	Present func(ctx *GenerationContext) bool
}

// Require builds a requirement for a component assignable to T under the
// given tag.
func Require[T any](name, tag string) ComponentRequirement {
	return ComponentRequirement{
		Component: name,
		Tag:       tag,
		Present: func(ctx *GenerationContext) bool {
			return HasComponent[T](ctx, tag)
		},
	}
}

// Step is a discrete, re-composable unit of map generation.
//
// Run performs the step against the context, calling yield at each stage
// boundary. A yield returning false means the consumer stopped driving the
// step; Run must return promptly without completing further stages. Steps
// signal an unsalvageable map by returning ErrRegenerateMap.
type Step interface {
	// Name identifies the step, and tags the items it produces.
	Name() string
	// RequiredComponents lists the components the step needs up front.
	RequiredComponents() []ComponentRequirement
	// Run executes the step's stages against the context.
	Run(ctx *GenerationContext, yield func(stage string) bool) error
}

// Perform validates a step's requirements and drives it to completion.
func Perform(s Step, ctx *GenerationContext) error {
	if err := checkRequirements(s, ctx); err != nil {
		return err
	}
	return s.Run(ctx, func(string) bool { return true })
}

// Stages validates a step's requirements and returns a lazy iterator over
// its stage names. Each yield is a pause point for debuggers and
// visualizers; stopping iteration abandons the remaining stages. Any
// error, including ErrRegenerateMap, is delivered as the final element.
func Stages(s Step, ctx *GenerationContext) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := checkRequirements(s, ctx); err != nil {
			yield("", err)
			return
		}
		stopped := false
		err := s.Run(ctx, func(stage string) bool {
			if !yield(stage, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

func checkRequirements(s Step, ctx *GenerationContext) error {
	for _, req := range s.RequiredComponents() {
		if !req.Present(ctx) {
			return &MissingComponentError{Step: s.Name(), Component: req.Component, Tag: req.Tag}
		}
	}
	return nil
}
