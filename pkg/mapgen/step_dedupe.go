package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// RemoveDuplicatePoints strips, from every area in one list, any point
// already present in an area of another, unmodified list. Areas left empty
// are dropped from the modified list.
type RemoveDuplicatePoints struct {
	// UnmodifiedAreaListTag is the tag of the list whose points win.
	UnmodifiedAreaListTag string
	// ModifiedAreaListTag is the tag of the list to strip.
	ModifiedAreaListTag string
}

// NewRemoveDuplicatePoints creates the step for the given list tags.
func NewRemoveDuplicatePoints(unmodifiedTag, modifiedTag string) *RemoveDuplicatePoints {
	return &RemoveDuplicatePoints{
		UnmodifiedAreaListTag: unmodifiedTag,
		ModifiedAreaListTag:   modifiedTag,
	}
}

// Name identifies the step.
func (s *RemoveDuplicatePoints) Name() string {
	return "RemoveDuplicatePoints"
}

// RequiredComponents lists the components the step needs up front.
func (s *RemoveDuplicatePoints) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.UnmodifiedAreaListTag),
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.ModifiedAreaListTag),
	}
}

// Run strips the duplicates, one stage per modified area.
func (s *RemoveDuplicatePoints) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.UnmodifiedAreaListTag == s.ModifiedAreaListTag {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "ModifiedAreaListTag",
			Message: "must differ from UnmodifiedAreaListTag"}
	}

	unmodified, _ := GetFirst[*ItemList[*area.Area]](ctx, s.UnmodifiedAreaListTag)
	modified, _ := GetFirst[*ItemList[*area.Area]](ctx, s.ModifiedAreaListTag)

	taken := mapset.New[geometry.Point]()
	for _, a := range unmodified.Items() {
		for _, p := range a.Points() {
			taken.Put(p)
		}
	}

	for _, a := range modified.Items() {
		a.RemoveFunc(taken.Has)
		if !yield("area") {
			return nil
		}
	}
	modified.RemoveFunc(func(a *area.Area) bool { return a.Count() == 0 })
	return nil
}
