package mapgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// TunnelDeadEndTrimming walls dead-end corridor cells back up, pass by
// pass, until no unsaved dead-ends remain. Each newly found dead-end may be
// randomly saved, leaving an intentional stub.
type TunnelDeadEndTrimming struct {
	// WallFloorTag is the tag of the grid view to fill back in.
	WallFloorTag string
	// TunnelsTag is the tag of the area list whose tunnels are trimmed.
	TunnelsTag string
	// SaveDeadEndChance is the percent chance a new dead-end is kept
	// forever instead of trimmed.
	SaveDeadEndChance float64
	// MaxTrimIterations bounds the passes per tunnel; negative means
	// trim until no new dead-ends appear.
	MaxTrimIterations int
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewTunnelDeadEndTrimming creates the step with its usual defaults: trim
// everything, no pass limit.
func NewTunnelDeadEndTrimming() *TunnelDeadEndTrimming {
	return &TunnelDeadEndTrimming{
		WallFloorTag:      TagWallFloor,
		TunnelsTag:        TagTunnels,
		SaveDeadEndChance: 0,
		MaxTrimIterations: -1,
	}
}

// Name identifies the step.
func (s *TunnelDeadEndTrimming) Name() string {
	return "TunnelDeadEndTrimming"
}

// RequiredComponents lists the components the step needs up front.
func (s *TunnelDeadEndTrimming) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.TunnelsTag),
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run trims each tunnel, one stage per tunnel finished.
func (s *TunnelDeadEndTrimming) Run(ctx *GenerationContext, yield func(string) bool) error {
	if s.SaveDeadEndChance < 0 || s.SaveDeadEndChance > 100 {
		return &InvalidConfigurationError{Step: s.Name(), Parameter: "SaveDeadEndChance",
			Message: "must be a percentage in [0, 100]"}
	}

	rng := rngOrGlobal(s.RNG)
	tunnels, _ := GetFirst[*ItemList[*area.Area]](ctx, s.TunnelsTag)
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)

	for _, tunnel := range tunnels.Items() {
		saved := mapset.New[geometry.Point]()
		for pass := 0; s.MaxTrimIterations < 0 || pass < s.MaxTrimIterations; pass++ {
			var trim []geometry.Point
			for _, p := range tunnel.Points() {
				if saved.Has(p) || !isDeadEnd(wallFloor, p) {
					continue
				}
				if PercentageCheck(rng, s.SaveDeadEndChance) {
					saved.Put(p)
					continue
				}
				trim = append(trim, p)
			}
			if len(trim) == 0 {
				break
			}
			for _, p := range trim {
				wallFloor.Set(p, false)
				tunnel.Remove(p)
			}
		}
		if !yield("tunnel") {
			return nil
		}
	}
	return nil
}

// isDeadEnd reports whether p is a floor cell with exactly one cardinal
// floor neighbor: three of its sides are wall. Out-of-bounds cells count as
// wall.
func isDeadEnd(wallFloor geometry.GridView[bool], p geometry.Point) bool {
	return wallFloor.Get(p) && countCardinalFloorNeighbors(wallFloor, p) == 1
}
