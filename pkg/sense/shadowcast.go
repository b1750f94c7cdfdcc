package sense

import "warren/pkg/engine/geometry"

// octantTransforms are the coordinate multipliers that map the first octant
// sweep onto all eight octants.
var octantTransforms = [8][4]int{
	{0, 1, 1, 0},
	{1, 0, 0, 1},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{0, -1, -1, 0},
	{-1, 0, 0, -1},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// RecursiveShadowcastingSource spreads intensity with recursive
// shadowcasting: walls cast hard-edged shadows, and any resistance below
// the source's intensity is fully transparent.
type RecursiveShadowcastingSource struct {
	SourceBase
}

// NewRecursiveShadowcastingSource creates an unrestricted shadowcasting
// source.
func NewRecursiveShadowcastingSource(position geometry.Point, radius float64, distanceCalc geometry.Distance, intensity float64) (*RecursiveShadowcastingSource, error) {
	base, err := newSourceBase(position, radius, distanceCalc, intensity)
	if err != nil {
		return nil, err
	}
	src := &RecursiveShadowcastingSource{SourceBase: base}
	src.onCalculate = src.spread
	return src, nil
}

// NewRecursiveShadowcastingSourceWithAngle creates a shadowcasting source
// restricted to an arc of span degrees facing the compass angle.
func NewRecursiveShadowcastingSourceWithAngle(position geometry.Point, radius float64, distanceCalc geometry.Distance, intensity, angle, span float64) (*RecursiveShadowcastingSource, error) {
	src, err := NewRecursiveShadowcastingSource(position, radius, distanceCalc, intensity)
	if err != nil {
		return nil, err
	}
	if err := src.SetSpan(span); err != nil {
		return nil, err
	}
	src.SetAngle(angle)
	return src, nil
}

// spread sweeps all eight octants from the center.
func (s *RecursiveShadowcastingSource) spread() {
	for _, t := range octantTransforms {
		s.shadowcast(1, 1.0, 0.0, t[0], t[1], t[2], t[3])
	}
}

// shadowcast scans one octant row by row between the start and end slopes,
// recursing into the unblocked wedge whenever a run of walls begins.
func (s *RecursiveShadowcastingSource) shadowcast(row int, start, end float64, xx, xy, yx, yy int) {
	newStart := 0.0
	if start < end {
		return
	}

	blocked := false
	for distance := row; distance <= int(s.radius) && distance < 2*s.size && !blocked; distance++ {
		deltaY := -distance
		for deltaX := -distance; deltaX <= 0; deltaX++ {
			currentX := s.center + deltaX*xx + deltaY*xy
			currentY := s.center + deltaX*yx + deltaY*yy
			global := s.globalAt(currentX, currentY)

			leftSlope := (float64(deltaX) - 0.5) / (float64(deltaY) + 0.5)
			rightSlope := (float64(deltaX) + 0.5) / (float64(deltaY) - 0.5)

			if !s.resistanceView.Contains(global) || start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			deltaRadius := s.distanceCalc.Calculate(float64(deltaX), float64(deltaY))
			if deltaRadius <= s.radius &&
				(!s.angleRestricted || s.inSpan(currentX-s.center, currentY-s.center)) {
				s.setLightAt(currentX, currentY, s.intensity-s.decay*deltaRadius)
			}

			if blocked {
				// Still traversing a run of walls.
				if s.resistanceView.Get(global) >= s.intensity {
					newStart = rightSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if s.resistanceView.Get(global) >= s.intensity && distance < int(s.radius) {
				// Wall starts here: sweep the wedge left of it, then
				// resume past the wall.
				blocked = true
				s.shadowcast(distance+1, start, leftSlope, xx, xy, yx, yy)
				newStart = rightSlope
			}
		}
	}
}
