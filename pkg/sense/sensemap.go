package sense

import (
	"math"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"warren/pkg/engine/geometry"
)

// SenseMap aggregates any number of sense sources over one resistance grid
// into a shared result view, and tracks which positions entered or left the
// sensed field between calculations.
type SenseMap struct {
	resistanceView geometry.GridView[float64]
	resultView     geometry.SettableGridView[float64]

	// ResizeResultView builds a replacement result view when the
	// resistance view's dimensions change. It must return a zeroed grid
	// of the new size.
	ResizeResultView func(width, height int) geometry.SettableGridView[float64]
	// ParallelCalculate runs each source's calculation on its own
	// goroutine when there is more than one source. Sources write only
	// their own local buffers, so no coordination is needed; aggregation
	// is always sequential in insertion order.
	ParallelCalculate bool
	// Recalculated fires after every Calculate completes.
	Recalculated func()
	// SenseMapReset fires after every Reset completes.
	SenseMapReset func()

	sources  []SenseSource
	current  mapset.Set[geometry.Point]
	previous mapset.Set[geometry.Point]
}

// NewSenseMap creates a sense map over the given resistance view, with a
// fresh result view of the same size and parallel calculation on.
func NewSenseMap(resistanceView geometry.GridView[float64]) *SenseMap {
	return &SenseMap{
		resistanceView: resistanceView,
		resultView:     geometry.NewArrayView[float64](resistanceView.Width(), resistanceView.Height()),
		ResizeResultView: func(width, height int) geometry.SettableGridView[float64] {
			return geometry.NewArrayView[float64](width, height)
		},
		ParallelCalculate: true,
		current:           mapset.New[geometry.Point](),
		previous:          mapset.New[geometry.Point](),
	}
}

// ResistanceView returns the resistance grid the map propagates through.
func (m *SenseMap) ResistanceView() geometry.GridView[float64] {
	return m.resistanceView
}

// ResultView returns the aggregated scalar field of the last calculation.
func (m *SenseMap) ResultView() geometry.GridView[float64] {
	return m.resultView
}

// Sources returns the registered sources in insertion order. Callers must
// not modify the returned slice.
func (m *SenseMap) Sources() []SenseSource {
	return m.sources
}

// AddSenseSource registers a source and binds the map's resistance view
// into it.
func (m *SenseMap) AddSenseSource(src SenseSource) {
	m.sources = append(m.sources, src)
	src.base().setResistanceView(m.resistanceView)
}

// RemoveSenseSource unregisters a source and detaches its resistance view.
// Returns false when the source was not registered.
func (m *SenseMap) RemoveSenseSource(src SenseSource) bool {
	for i, existing := range m.sources {
		if existing == src {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			src.base().setResistanceView(nil)
			return true
		}
	}
	return false
}

// Calculate resets the result view, recomputes every enabled source, and
// aggregates their buffers additively into the result, in insertion order.
func (m *SenseMap) Calculate() {
	m.Reset()

	if m.ParallelCalculate && len(m.sources) > 1 {
		var wg sync.WaitGroup
		for _, src := range m.sources {
			wg.Add(1)
			go func(s SenseSource) {
				defer wg.Done()
				s.CalculateLight()
			}(src)
		}
		wg.Wait()
	} else {
		for _, src := range m.sources {
			src.CalculateLight()
		}
	}

	for _, src := range m.sources {
		if src.Enabled() {
			m.blit(src.base())
		}
	}

	if m.Recalculated != nil {
		m.Recalculated()
	}
}

// Reset zeroes the result view, rebuilding it when the resistance view
// changed size, and rolls the current membership set into the previous
// one.
func (m *SenseMap) Reset() {
	if m.resistanceView.Width() != m.resultView.Width() || m.resistanceView.Height() != m.resultView.Height() {
		m.resultView = m.ResizeResultView(m.resistanceView.Width(), m.resistanceView.Height())
	} else {
		m.resultView.Fill(0)
	}

	m.previous = m.current
	m.current = mapset.New[geometry.Point]()

	if m.SenseMapReset != nil {
		m.SenseMapReset()
	}
}

// blit stamps a source's local buffer into the result view over the
// overlap of the source's square and the view bounds.
func (m *SenseMap) blit(src *SourceBase) {
	r := int(math.Floor(src.radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			global := src.position.Translate(dx, dy)
			if !m.resultView.Contains(global) {
				continue
			}
			value := src.lightAt(src.center+dx, src.center+dy)
			if value > 0 {
				m.resultView.Set(global, m.resultView.Get(global)+value)
				m.current.Put(global)
			}
		}
	}
}

// CurrentSenseMap returns every position with a positive result value.
func (m *SenseMap) CurrentSenseMap() []geometry.Point {
	return setToSlice(m.current)
}

// NewlyInSenseMap returns the positions sensed now but not in the previous
// calculation.
func (m *SenseMap) NewlyInSenseMap() []geometry.Point {
	return setDifference(m.current, m.previous)
}

// NewlyOutOfSenseMap returns the positions sensed in the previous
// calculation but not now.
func (m *SenseMap) NewlyOutOfSenseMap() []geometry.Point {
	return setDifference(m.previous, m.current)
}

func setToSlice(s mapset.Set[geometry.Point]) []geometry.Point {
	points := make([]geometry.Point, 0, s.Size())
	s.Each(func(p geometry.Point) {
		points = append(points, p)
	})
	return points
}

func setDifference(a, b mapset.Set[geometry.Point]) []geometry.Point {
	var points []geometry.Point
	a.Each(func(p geometry.Point) {
		if !b.Has(p) {
			points = append(points, p)
		}
	})
	return points
}
