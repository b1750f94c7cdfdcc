package devtools

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"warren/pkg/engine/geometry"
	"warren/pkg/mapgen"
)

// Colors for the terminal map view.
var (
	colorWall  = color.New(color.FgDarkGray)
	colorFloor = color.New(color.FgWhite)
	colorDoor  = color.New(color.FgYellow, color.Bold)
	colorLight = color.New(color.FgLightYellow)
)

// FprintMap writes a colored rendering of the context's map: gray walls,
// white floor, yellow doors, with an optional light overlay drawn from the
// ramp wherever the field is positive.
func FprintMap(w io.Writer, ctx *mapgen.GenerationContext, light geometry.GridView[float64], maxLight float64) {
	wallFloor, ok := mapgen.GetFirst[geometry.GridView[bool]](ctx, mapgen.TagWallFloor)
	if !ok {
		return
	}
	doors := doorPositions(ctx)

	for y := 0; y < wallFloor.Height(); y++ {
		for x := 0; x < wallFloor.Width(); x++ {
			p := geometry.NewPoint(x, y)
			if light != nil && light.Contains(p) && light.Get(p) > 0 {
				fmt.Fprint(w, colorLight.Sprintf("%c", rampGlyph(light.Get(p), maxLight)))
				continue
			}
			switch {
			case doors[p]:
				fmt.Fprint(w, colorDoor.Sprintf("%c", SymbolDoor))
			case wallFloor.Get(p):
				fmt.Fprint(w, colorFloor.Sprintf("%c", SymbolFloor))
			default:
				fmt.Fprint(w, colorWall.Sprintf("%c", SymbolWall))
			}
		}
		fmt.Fprintln(w)
	}
}

// DumpMapToFile writes a debug dump of the context's map: metadata, legend,
// and the rendered grid. Format is human- and LLM-readable (sections,
// key: value, consistent structure).
func DumpMapToFile(path string, ctx *mapgen.GenerationContext) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "=== MAP DUMP ===")
	fmt.Fprintf(f, "size: %dx%d\n", ctx.Width(), ctx.Height())
	if rooms, ok := mapgen.GetFirst[*mapgen.ItemList[geometry.Rectangle]](ctx, mapgen.TagRooms); ok {
		fmt.Fprintf(f, "rooms: %d\n", rooms.Count())
	}
	if doors, ok := mapgen.GetFirst[*mapgen.DoorList](ctx, mapgen.TagDoors); ok {
		total := 0
		for _, room := range doors.Rooms() {
			total += len(doors.DoorsFor(room).Doors())
		}
		fmt.Fprintf(f, "doors: %d\n", total)
	}
	fmt.Fprintln(f)
	fmt.Fprintln(f, "legend: # wall, . floor, D door")
	fmt.Fprintln(f)
	fmt.Fprint(f, RenderMap(ctx))
	return nil
}
