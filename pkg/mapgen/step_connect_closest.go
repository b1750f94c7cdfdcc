package mapgen

import (
	"math/rand"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
	"warren/pkg/engine/unionfind"
)

// ClosestMapAreaConnection carves tunnels until every input area belongs to
// one connected component, always connecting each unconnected group to its
// nearest neighbor. A disjoint set tracks the groups; its join events merge
// the groups' point composites so distances are always measured against
// whole groups.
type ClosestMapAreaConnection struct {
	// AreasTag is the tag of the area list to connect.
	AreasTag string
	// WallFloorTag is the tag of the grid view to carve tunnels into.
	WallFloorTag string
	// TunnelsTag is the tag of the area list to record carved tunnels in.
	TunnelsTag string
	// ConnectionPointSelector chooses the endpoints of each tunnel; nil
	// uses random selection.
	ConnectionPointSelector ConnectionPointSelector
	// DistanceCalc ranks candidate connections.
	DistanceCalc geometry.Distance
	// TunnelCreator carves the corridors; nil uses a direct line matching
	// DistanceCalc.
	TunnelCreator TunnelCreator
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// NewClosestMapAreaConnection creates the step with sensible defaults.
func NewClosestMapAreaConnection() *ClosestMapAreaConnection {
	return &ClosestMapAreaConnection{
		AreasTag:     TagAreas,
		WallFloorTag: TagWallFloor,
		TunnelsTag:   TagTunnels,
		DistanceCalc: geometry.DistanceManhattan,
	}
}

// Name identifies the step.
func (s *ClosestMapAreaConnection) Name() string {
	return "ClosestMapAreaConnection"
}

// RequiredComponents lists the components the step needs up front.
func (s *ClosestMapAreaConnection) RequiredComponents() []ComponentRequirement {
	return []ComponentRequirement{
		Require[*ItemList[*area.Area]]("ItemList[*Area]", s.AreasTag),
		Require[geometry.SettableGridView[bool]]("SettableGridView[bool]", s.WallFloorTag),
	}
}

// Run connects the areas, one stage per tunnel carved.
func (s *ClosestMapAreaConnection) Run(ctx *GenerationContext, yield func(string) bool) error {
	areas, _ := GetFirst[*ItemList[*area.Area]](ctx, s.AreasTag)
	wallFloor, _ := GetFirst[geometry.SettableGridView[bool]](ctx, s.WallFloorTag)
	tunnels := areaList(ctx, s.TunnelsTag)

	selector := s.ConnectionPointSelector
	if selector == nil {
		selector = &RandomConnectionPointSelector{RNG: s.RNG}
	}
	creator := s.TunnelCreator
	if creator == nil {
		creator = NewDirectLineTunnelCreator(s.DistanceCalc)
	}

	n := areas.Count()
	if n <= 1 {
		return nil
	}

	// Each group's composite accumulates the sub-areas of everything it
	// has absorbed, so the root always carries the whole group's points.
	groups := make([]*area.MultiArea, n)
	for i, a := range areas.Items() {
		groups[i] = area.NewMultiArea(a)
	}
	ds := unionfind.New(n)
	ds.SetsJoined = func(larger, smaller int) {
		for _, sub := range groups[smaller].SubAreas() {
			groups[larger].AddSubArea(sub)
		}
	}

	for ds.Count() > 1 {
		for i := 0; i < n; i++ {
			if ds.Find(i) != i {
				continue
			}
			closest, pointA, pointB, found := s.findNearestGroup(ds, groups, selector, i)
			if !found {
				continue
			}
			tunnels.Add(creator.CreateTunnel(wallFloor, pointA, pointB), s.Name())
			ds.MakeUnion(i, closest)
			if !yield("connection") {
				return nil
			}
			if ds.Count() <= 1 {
				break
			}
		}
	}
	return nil
}

// findNearestGroup returns the root of the closest group in a different set
// than i, along with the connection points chosen against it. The first
// minimum encountered wins.
func (s *ClosestMapAreaConnection) findNearestGroup(ds *unionfind.DisjointSet, groups []*area.MultiArea, selector ConnectionPointSelector, i int) (int, geometry.Point, geometry.Point, bool) {
	bestDistance := -1.0
	best := -1
	var bestA, bestB geometry.Point
	for j := range groups {
		if ds.InSameSet(i, j) {
			continue
		}
		root := ds.Find(j)
		pointA, pointB := selector.SelectConnectionPoints(groups[i], groups[root])
		d := s.DistanceCalc.Of(pointA, pointB)
		if bestDistance < 0 || d < bestDistance {
			bestDistance = d
			best = root
			bestA, bestB = pointA, pointB
		}
	}
	return best, bestA, bestB, best >= 0
}
