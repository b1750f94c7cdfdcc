package sense

import (
	"github.com/zyedidia/generic/queue"

	"warren/pkg/engine/geometry"
)

// RippleType selects how widely a ripple source diffuses: how many of a
// cell's neighbors contribute to its value. Low counts yield tight beams,
// high counts a loose diffuse glow.
type RippleType int

// Ripple flavor constants.
const (
	// RippleRegular diffuses slightly around corners.
	RippleRegular RippleType = iota
	// RippleLoose spreads around edges more freely.
	RippleLoose
	// RippleTight hugs straight lines from the source.
	RippleTight
	// RippleVeryLoose spreads almost without regard for occluders.
	RippleVeryLoose
)

// neighborCount returns how many closest neighbors contribute light.
func (t RippleType) neighborCount() int {
	switch t {
	case RippleLoose:
		return 3
	case RippleTight:
		return 1
	case RippleVeryLoose:
		return 6
	default:
		return 2
	}
}

// RippleSource spreads intensity with an occluder-aware flood: each cell is
// lit from its neighbors nearest the source, losing intensity to distance
// and to the resistance of the cells the light passed through.
type RippleSource struct {
	SourceBase

	rippleType RippleType
	nearLight  []bool
}

// NewRippleSource creates an unrestricted ripple source of the given
// flavor.
func NewRippleSource(rippleType RippleType, position geometry.Point, radius float64, distanceCalc geometry.Distance, intensity float64) (*RippleSource, error) {
	base, err := newSourceBase(position, radius, distanceCalc, intensity)
	if err != nil {
		return nil, err
	}
	src := &RippleSource{SourceBase: base, rippleType: rippleType}
	src.onCalculate = src.spread
	return src, nil
}

// NewRippleSourceWithAngle creates a ripple source restricted to an arc of
// span degrees facing the compass angle.
func NewRippleSourceWithAngle(rippleType RippleType, position geometry.Point, radius float64, distanceCalc geometry.Distance, intensity, angle, span float64) (*RippleSource, error) {
	src, err := NewRippleSource(rippleType, position, radius, distanceCalc, intensity)
	if err != nil {
		return nil, err
	}
	if err := src.SetSpan(span); err != nil {
		return nil, err
	}
	src.SetAngle(angle)
	return src, nil
}

// RippleType returns the source's diffusion flavor.
func (s *RippleSource) RippleType() RippleType { return s.rippleType }

// spread floods outward from the center, re-examining cells whose light
// increases until the field stabilizes.
func (s *RippleSource) spread() {
	s.nearLight = make([]bool, s.size*s.size)

	pending := queue.New[geometry.Point]()
	pending.Enqueue(geometry.NewPoint(s.center, s.center))

	for !pending.Empty() {
		p := pending.Dequeue()
		if s.lightAt(p.X, p.Y) <= 0 || s.nearLight[p.Y*s.size+p.X] {
			continue
		}

		for _, dir := range geometry.AdjacencyEightWay.DirectionsOfNeighbors() {
			n := dir.Translate(p)
			global := s.globalAt(n.X, n.Y)
			if !s.resistanceView.Contains(global) ||
				s.distanceCalc.Of(geometry.NewPoint(s.center, s.center), n) > s.radius {
				continue
			}
			if s.angleRestricted && !s.inSpan(n.X-s.center, n.Y-s.center) {
				continue
			}

			light := s.nearRippleLight(n, global)
			if light > s.lightAt(n.X, n.Y) {
				s.setLightAt(n.X, n.Y, light)
				if s.resistanceView.Get(global) < s.intensity {
					// Light here increased, so its neighbors need
					// another look.
					pending.Enqueue(n)
				}
			}
		}
	}
}

// nearRippleLight computes the light reaching cell n from the neighbors of
// n nearest the center. It also marks n as near-light when n is a wall or
// when every lit neighbor is itself only indirectly lit, which stops
// further spreading through it.
func (s *RippleSource) nearRippleLight(n, global geometry.Point) float64 {
	if n.X == s.center && n.Y == s.center {
		return s.intensity
	}

	center := geometry.NewPoint(s.center, s.center)

	// Neighbors sorted by distance to the center; ties keep scan order.
	var neighbors []geometry.Point
	for _, dir := range geometry.AdjacencyEightWay.DirectionsOfNeighbors() {
		neighbor := dir.Translate(n)
		if neighbor.X < 0 || neighbor.X >= s.size || neighbor.Y < 0 || neighbor.Y >= s.size {
			continue
		}
		d := s.distanceCalc.Of(center, neighbor)
		idx := 0
		for idx < len(neighbors) && s.distanceCalc.Of(center, neighbors[idx]) <= d {
			idx++
		}
		neighbors = append(neighbors, geometry.Point{})
		copy(neighbors[idx+1:], neighbors[idx:])
		neighbors[idx] = neighbor
	}
	if len(neighbors) == 0 {
		return 0
	}

	keep := min(len(neighbors), s.rippleType.neighborCount())
	best := 0.0
	lit, indirect := 0, 0
	for _, m := range neighbors[:keep] {
		if s.lightAt(m.X, m.Y) <= 0 {
			continue
		}
		lit++
		if s.nearLight[m.Y*s.size+m.X] {
			indirect++
		}
		mGlobal := s.globalAt(m.X, m.Y)
		resistance := s.resistanceView.Get(mGlobal)
		if mGlobal == s.position {
			resistance = 0
		}
		candidate := s.lightAt(m.X, m.Y) - s.distanceCalc.Of(n, m)*s.decay - resistance
		if candidate > best {
			best = candidate
		}
	}

	if s.resistanceView.Get(global) >= s.intensity || indirect >= lit {
		s.nearLight[n.Y*s.size+n.X] = true
	}
	return best
}
