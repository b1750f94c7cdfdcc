// Package mathutil provides small numeric helpers shared by the map
// generation and sense propagation packages.
package mathutil

import "math"

// WrapInt wraps num into [0, wrapTo), treating negative inputs as positions
// counted backward from wrapTo.
func WrapInt(num, wrapTo int) int {
	r := num % wrapTo
	if r < 0 {
		r += wrapTo
	}
	return r
}

// WrapFloat wraps num into [0, wrapTo).
func WrapFloat(num, wrapTo float64) float64 {
	r := math.Mod(num, wrapTo)
	if r < 0 {
		r += wrapTo
	}
	return r
}

// RoundToMultiple rounds value to the nearest multiple of multiple, rounding
// half away from zero.
func RoundToMultiple(value, multiple int) int {
	return int(math.Round(float64(value)/float64(multiple))) * multiple
}

// ApproxAtan2 maps the vector (x, y) to a fraction of a full circle in
// [0, 1), increasing clockwise in screen coordinates (y down). It trades a
// small amount of accuracy for avoiding trigonometric calls in the inner
// loops of the sense sources.
func ApproxAtan2(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	coefficient1 := math.Pi / 4
	coefficient2 := 3 * coefficient1
	absY := math.Abs(y)

	var angle float64
	if x >= 0 {
		r := (x - absY) / (x + absY)
		angle = coefficient1 - coefficient1*r
	} else {
		r := (x + absY) / (absY - x)
		angle = coefficient2 - coefficient1*r
	}

	if y < 0 {
		angle = -angle
	}
	return WrapFloat(angle/(2*math.Pi), 1)
}
