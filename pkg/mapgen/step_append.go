package mapgen

import "warren/pkg/engine/area"

// AppendAreaLists appends every area of one tagged list onto another,
// preserving the producing step recorded for each area, and optionally
// removes the appended list from the context.
type AppendAreaLists struct {
	// BaseListTag is the tag of the list appended onto.
	BaseListTag string
	// ListToAppendTag is the tag of the list appended from.
	ListToAppendTag string
	// RemoveAppendedComponent removes the appended list from the context
	// afterward.
	RemoveAppendedComponent bool
}

// NewAppendAreaLists creates the step for the given list tags.
func NewAppendAreaLists(baseTag, appendTag string) *AppendAreaLists {
	return &AppendAreaLists{BaseListTag: baseTag, ListToAppendTag: appendTag}
}

// Name identifies the step.
func (s *AppendAreaLists) Name() string {
	return "AppendAreaLists"
}

// RequiredComponents lists the components the step needs up front.
func (s *AppendAreaLists) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.BaseListTag),
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.ListToAppendTag),
	}
}

// Run appends the lists in a single stage.
func (s *AppendAreaLists) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.BaseListTag == s.ListToAppendTag {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "ListToAppendTag",
			Message: "must differ from BaseListTag"}
	}

	base, _ := GetFirst[*ItemList[*area.Area]](ctx, s.BaseListTag)
	toAppend, _ := GetFirst[*ItemList[*area.Area]](ctx, s.ListToAppendTag)

	base.AppendAll(toAppend)
	if s.RemoveAppendedComponent {
		RemoveComponent[*ItemList[*area.Area]](ctx, s.ListToAppendTag)
	}
	yield("append")
	return nil
}
