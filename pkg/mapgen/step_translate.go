package mapgen

import (
	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// RectanglesToAreas translates a list of rectangles into a list of areas so
// rectangle-producing steps can feed area-consuming ones.
type RectanglesToAreas struct {
	// RectanglesTag is the tag of the rectangle list to read.
	RectanglesTag string
	// AreasTag is the tag of the area list to write.
	AreasTag string
	// RemoveSourceComponent removes the rectangle list from the context
	// after translation.
	RemoveSourceComponent bool
}

// NewRectanglesToAreas creates the step translating the canonical rooms
// list into the canonical areas list.
func NewRectanglesToAreas() *RectanglesToAreas {
	return &RectanglesToAreas{RectanglesTag: TagRooms, AreasTag: TagAreas}
}

// Name identifies the step.
func (s *RectanglesToAreas) Name() string {
	return "RectanglesToAreas"
}

// RequiredComponents lists the components the step needs up front.
func (s *RectanglesToAreas) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[geometry.Rectangle]]("ItemList[Rectangle]", s.RectanglesTag),
	}
}

// Run translates the rectangles, one stage per rectangle.
func (s *RectanglesToAreas) Run(ctx *GenerationContext, yield func(string) bool) error {
	rects, _ := GetFirst[*ItemList[geometry.Rectangle]](ctx, s.RectanglesTag)
	areas := areaList(ctx, s.AreasTag)

	for _, rect := range rects.Items() {
		translated := area.NewAreaWithCapacity(rect.Size())
		translated.AddAll(rect.Positions()...)
		areas.Add(translated, s.Name())
		if !yield("rectangle") {
			return nil
		}
	}

	if s.RemoveSourceComponent {
		RemoveComponent[*ItemList[geometry.Rectangle]](ctx, s.RectanglesTag)
	}
	return nil
}
