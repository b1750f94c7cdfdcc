// Package devtools provides developer tools for inspecting generated maps
// and sense fields: plain-text renderings, colored terminal output, and
// file dumps.
package devtools

import (
	"strings"

	"warren/pkg/engine/geometry"
	"warren/pkg/mapgen"
)

// Map symbols, matching the file-dump legend.
const (
	SymbolWall  = '#'
	SymbolFloor = '.'
	SymbolDoor  = 'D'
)

// lightRamp maps rising intensity fractions to denser glyphs.
const lightRamp = " .:-=+*#%@"

// RenderWallFloor renders a passability grid as one line per row: '#' for
// wall, '.' for floor.
func RenderWallFloor(view geometry.GridView[bool]) string {
	var b strings.Builder
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			if view.Get(geometry.NewPoint(x, y)) {
				b.WriteRune(SymbolFloor)
			} else {
				b.WriteRune(SymbolWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderMap renders a generation context's map, overlaying recorded doors
// on the passability grid.
func RenderMap(ctx *mapgen.GenerationContext) string {
	wallFloor, ok := mapgen.GetFirst[geometry.GridView[bool]](ctx, mapgen.TagWallFloor)
	if !ok {
		return ""
	}
	doors := doorPositions(ctx)

	var b strings.Builder
	for y := 0; y < wallFloor.Height(); y++ {
		for x := 0; x < wallFloor.Width(); x++ {
			p := geometry.NewPoint(x, y)
			switch {
			case doors[p]:
				b.WriteRune(SymbolDoor)
			case wallFloor.Get(p):
				b.WriteRune(SymbolFloor)
			default:
				b.WriteRune(SymbolWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderSenseLevels renders a scalar field as glyphs from the light ramp,
// scaled so maxValue maps to the densest glyph. Zero cells render as the
// wall symbol when walls is non-nil and the cell is wall, else as space.
func RenderSenseLevels(result geometry.GridView[float64], maxValue float64, walls geometry.GridView[bool]) string {
	var b strings.Builder
	for y := 0; y < result.Height(); y++ {
		for x := 0; x < result.Width(); x++ {
			p := geometry.NewPoint(x, y)
			value := result.Get(p)
			if value <= 0 {
				if walls != nil && walls.Contains(p) && !walls.Get(p) {
					b.WriteRune(SymbolWall)
				} else {
					b.WriteByte(' ')
				}
				continue
			}
			b.WriteByte(rampGlyph(value, maxValue))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// rampGlyph picks the ramp glyph for a value relative to the maximum.
func rampGlyph(value, maxValue float64) byte {
	if maxValue <= 0 {
		return lightRamp[len(lightRamp)-1]
	}
	idx := int(value / maxValue * float64(len(lightRamp)-1))
	if idx < 1 {
		idx = 1
	}
	if idx > len(lightRamp)-1 {
		idx = len(lightRamp) - 1
	}
	return lightRamp[idx]
}

// doorPositions collects every recorded door position in the context.
func doorPositions(ctx *mapgen.GenerationContext) map[geometry.Point]bool {
	positions := make(map[geometry.Point]bool)
	doors, ok := mapgen.GetFirst[*mapgen.DoorList](ctx, mapgen.TagDoors)
	if !ok {
		return positions
	}
	for _, room := range doors.Rooms() {
		for _, door := range doors.DoorsFor(room).Doors() {
			positions[door] = true
		}
	}
	return positions
}
