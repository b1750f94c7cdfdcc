package mapgen

import (
	"math/rand"

	"warren/pkg/engine/area"
	"warren/pkg/engine/geometry"
)

// TunnelCreator carves a corridor between two points on a map and returns
// the area of carved cells.
type TunnelCreator interface {
	CreateTunnel(wallFloor geometry.SettableGridView[bool], start, end geometry.Point) *area.Area
}

// HorizontalVerticalTunnelCreator carves an L-shaped corridor: one
// horizontal run and one vertical run, in coin-flip order.
type HorizontalVerticalTunnelCreator struct {
	// RNG is the random stream to draw from; nil uses GlobalRNG.
	RNG *rand.Rand
}

// CreateTunnel implements TunnelCreator.
func (t *HorizontalVerticalTunnelCreator) CreateTunnel(wallFloor geometry.SettableGridView[bool], start, end geometry.Point) *area.Area {
	rng := rngOrGlobal(t.RNG)
	carved := area.NewArea()
	if PercentageCheck(rng, 50) {
		carveHorizontal(wallFloor, carved, start.X, end.X, start.Y)
		carveVertical(wallFloor, carved, start.Y, end.Y, end.X)
	} else {
		carveVertical(wallFloor, carved, start.Y, end.Y, start.X)
		carveHorizontal(wallFloor, carved, start.X, end.X, end.Y)
	}
	return carved
}

func carveHorizontal(wallFloor geometry.SettableGridView[bool], carved *area.Area, startX, endX, y int) {
	step := sign(endX - startX)
	for x := startX; ; x += step {
		p := geometry.NewPoint(x, y)
		wallFloor.Set(p, true)
		carved.Add(p)
		if x == endX {
			break
		}
	}
}

func carveVertical(wallFloor geometry.SettableGridView[bool], carved *area.Area, startY, endY, x int) {
	step := sign(endY - startY)
	for y := startY; ; y += step {
		p := geometry.NewPoint(x, y)
		wallFloor.Set(p, true)
		carved.Add(p)
		if y == endY {
			break
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DirectLineTunnelCreator carves a straight corridor between two points,
// orthogonally under the Manhattan metric and with Bresenham otherwise.
type DirectLineTunnelCreator struct {
	// DistanceCalc selects the rasterization for the corridor.
	DistanceCalc geometry.Distance
	// DoubleWideVertical also carves the cell right of each step that
	// changes row, except along the map's right edge.
	DoubleWideVertical bool
}

// NewDirectLineTunnelCreator creates a double-wide creator for the given
// metric.
func NewDirectLineTunnelCreator(distance geometry.Distance) *DirectLineTunnelCreator {
	return &DirectLineTunnelCreator{DistanceCalc: distance, DoubleWideVertical: true}
}

// CreateTunnel implements TunnelCreator.
func (t *DirectLineTunnelCreator) CreateTunnel(wallFloor geometry.SettableGridView[bool], start, end geometry.Point) *area.Area {
	algorithm := geometry.LineBresenham
	if t.DistanceCalc == geometry.DistanceManhattan {
		algorithm = geometry.LineOrthogonal
	}

	carved := area.NewArea()
	previous := start
	for i, p := range geometry.Line(start, end, algorithm) {
		wallFloor.Set(p, true)
		carved.Add(p)
		if t.DoubleWideVertical && i > 0 && p.Y != previous.Y && p.X+1 < wallFloor.Width()-1 {
			wide := p.Translate(1, 0)
			wallFloor.Set(wide, true)
			carved.Add(wide)
		}
		previous = p
	}
	return carved
}
