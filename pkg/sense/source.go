// Package sense provides a framework for propagating scalar intensity from
// one or more sources through a resistance grid: light, sound, scent.
// Sources compute into local buffers; a SenseMap aggregates them into one
// result view and tracks which positions entered or left the field.
package sense

import (
	"fmt"
	"math"

	"warren/pkg/engine/geometry"
	"warren/pkg/engine/mathutil"
)

// SenseSource is a point that spreads intensity outward through a
// resistance view. Implementations differ only in their spread algorithm.
type SenseSource interface {
	// Position returns the source's position on the map.
	Position() geometry.Point
	// SetPosition moves the source.
	SetPosition(p geometry.Point)
	// Radius returns the maximum spread distance.
	Radius() float64
	// SetRadius changes the maximum spread distance; it must be positive.
	SetRadius(radius float64) error
	// Intensity returns the source's starting value at its origin.
	Intensity() float64
	// SetIntensity changes the starting value; it must not be negative.
	SetIntensity(intensity float64) error
	// Enabled reports whether the source participates in calculations.
	Enabled() bool
	// SetEnabled toggles the source's participation.
	SetEnabled(enabled bool)
	// CalculateLight recomputes the source's local result buffer. Called
	// by the owning SenseMap.
	CalculateLight()

	base() *SourceBase
}

// SourceBase carries the state and bookkeeping shared by every sense
// source: position, radius-driven local buffer, intensity and decay, angle
// restriction, and the bound resistance view.
type SourceBase struct {
	position     geometry.Point
	radius       float64
	intensity    float64
	decay        float64
	distanceCalc geometry.Distance

	// angle is stored internally rotated -90 degrees from the compass
	// angle callers see, so 0 points along +x.
	angle           float64
	span            float64
	angleRestricted bool

	enabled        bool
	resistanceView geometry.GridView[float64]

	light  []float64
	size   int
	center int

	// RadiusChanged fires after the radius changes and the local buffer
	// has been reallocated.
	RadiusChanged func()

	onCalculate func()
}

func newSourceBase(position geometry.Point, radius float64, distanceCalc geometry.Distance, intensity float64) (SourceBase, error) {
	s := SourceBase{
		position:     position,
		distanceCalc: distanceCalc,
		span:         360,
		enabled:      true,
	}
	if err := s.SetRadius(radius); err != nil {
		return SourceBase{}, err
	}
	if err := s.SetIntensity(intensity); err != nil {
		return SourceBase{}, err
	}
	return s, nil
}

func (s *SourceBase) base() *SourceBase { return s }

// Position returns the source's position on the map.
func (s *SourceBase) Position() geometry.Point { return s.position }

// SetPosition moves the source.
func (s *SourceBase) SetPosition(p geometry.Point) { s.position = p }

// Radius returns the maximum spread distance.
func (s *SourceBase) Radius() float64 { return s.radius }

// SetRadius changes the maximum spread distance, reallocating and clearing
// the local buffer, recomputing decay, and firing RadiusChanged.
func (s *SourceBase) SetRadius(radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("sense source radius must be positive, got %v", radius)
	}
	s.radius = radius
	s.size = 2*int(math.Floor(radius)) + 1
	s.center = s.size / 2
	s.light = make([]float64, s.size*s.size)
	s.decay = s.intensity / (s.radius + 1)
	if s.RadiusChanged != nil {
		s.RadiusChanged()
	}
	return nil
}

// Intensity returns the source's starting value at its origin.
func (s *SourceBase) Intensity() float64 { return s.intensity }

// SetIntensity changes the starting value and recomputes decay.
func (s *SourceBase) SetIntensity(intensity float64) error {
	if intensity < 0 {
		return fmt.Errorf("sense source intensity must not be negative, got %v", intensity)
	}
	s.intensity = intensity
	s.decay = s.intensity / (s.radius + 1)
	return nil
}

// Decay returns the per-unit-distance intensity loss.
func (s *SourceBase) Decay() float64 { return s.decay }

// DistanceCalc returns the metric distances are measured with.
func (s *SourceBase) DistanceCalc() geometry.Distance { return s.distanceCalc }

// SetDistanceCalc changes the metric distances are measured with.
func (s *SourceBase) SetDistanceCalc(d geometry.Distance) { s.distanceCalc = d }

// Angle returns the direction the restricted arc faces, compass style:
// 0 is up, increasing clockwise.
func (s *SourceBase) Angle() float64 {
	return mathutil.WrapFloat(s.angle+90, 360)
}

// SetAngle points the restricted arc, compass style.
func (s *SourceBase) SetAngle(degrees float64) {
	s.angle = mathutil.WrapFloat(degrees-90, 360)
}

// Span returns the width of the arc the source spreads over, in degrees.
func (s *SourceBase) Span() float64 { return s.span }

// SetSpan changes the arc width. Any value below 360 restricts the source
// to its arc; 360 disables the restriction.
func (s *SourceBase) SetSpan(degrees float64) error {
	if degrees < 0 || degrees > 360 {
		return fmt.Errorf("sense source span must be in [0, 360], got %v", degrees)
	}
	s.span = degrees
	s.angleRestricted = degrees != 360
	return nil
}

// IsAngleRestricted reports whether the source spreads over a partial arc.
func (s *SourceBase) IsAngleRestricted() bool { return s.angleRestricted }

// Enabled reports whether the source participates in calculations.
func (s *SourceBase) Enabled() bool { return s.enabled }

// SetEnabled toggles the source's participation.
func (s *SourceBase) SetEnabled(enabled bool) { s.enabled = enabled }

// CalculateLight clears the local buffer, stamps the intensity at the
// center, and spreads with the concrete algorithm. Disabled or unbound
// sources do nothing.
func (s *SourceBase) CalculateLight() {
	if !s.enabled || s.resistanceView == nil {
		return
	}
	for i := range s.light {
		s.light[i] = 0
	}
	s.light[s.center*s.size+s.center] = s.intensity
	s.onCalculate()
}

// setResistanceView binds or unbinds the resistance grid. Only the owning
// sense map calls this.
func (s *SourceBase) setResistanceView(view geometry.GridView[float64]) {
	s.resistanceView = view
}

// lightAt returns the local buffer value at local coordinates.
func (s *SourceBase) lightAt(x, y int) float64 {
	return s.light[y*s.size+x]
}

// setLightAt writes the local buffer value at local coordinates.
func (s *SourceBase) setLightAt(x, y int, value float64) {
	s.light[y*s.size+x] = value
}

// globalAt maps local buffer coordinates onto the resistance view.
func (s *SourceBase) globalAt(x, y int) geometry.Point {
	r := int(math.Floor(s.radius))
	return geometry.NewPoint(s.position.X-r+x, s.position.Y-r+y)
}

// angleFraction returns the internal angle as a fraction of a full circle.
func (s *SourceBase) angleFraction() float64 { return s.angle / 360 }

// spanFraction returns the span as a fraction of a full circle.
func (s *SourceBase) spanFraction() float64 { return s.span / 360 }

// inSpan reports whether the local offset from the center lies within the
// restricted arc, boundary inclusive.
func (s *SourceBase) inSpan(dx, dy int) bool {
	at2 := math.Abs(s.angleFraction() - mathutil.ApproxAtan2(float64(dy), float64(dx)))
	half := s.spanFraction() * 0.5
	return at2 <= half || at2 >= 1-half
}
