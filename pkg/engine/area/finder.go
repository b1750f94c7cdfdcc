package area

import (
	"fmt"

	"github.com/zyedidia/generic/stack"

	"warren/pkg/engine/geometry"
)

// MapAreaFinder partitions a boolean grid view into its maximal connected
// components under an adjacency rule. True cells are members.
type MapAreaFinder struct {
	AreasView geometry.GridView[bool]
	Adjacency geometry.AdjacencyRule

	visited       []bool
	visitedWidth  int
	visitedHeight int
}

// NewMapAreaFinder creates a finder over the given view and adjacency rule.
func NewMapAreaFinder(view geometry.GridView[bool], adjacency geometry.AdjacencyRule) *MapAreaFinder {
	return &MapAreaFinder{AreasView: view, Adjacency: adjacency}
}

// MapAreasFor returns the connected components of the view in a single call.
func MapAreasFor(view geometry.GridView[bool], adjacency geometry.AdjacencyRule) []*Area {
	return NewMapAreaFinder(view, adjacency).MapAreas()
}

// MapAreas scans the view in row-major order and returns one area per
// connected component. The visit state is reset at the start of the scan.
func (f *MapAreaFinder) MapAreas() []*Area {
	f.resetVisited()
	var areas []*Area
	for y := 0; y < f.AreasView.Height(); y++ {
		for x := 0; x < f.AreasView.Width(); x++ {
			a := f.fill(geometry.NewPoint(x, y))
			if a != nil {
				areas = append(areas, a)
			}
		}
	}
	return areas
}

// FillFrom floods a single component from the given origin. It returns nil
// when the origin is not a member or has already been visited. With
// clearVisited false, visit state is retained between calls so multiple
// fills can be chained; the view's size must not change between such calls.
func (f *MapAreaFinder) FillFrom(origin geometry.Point, clearVisited bool) (*Area, error) {
	if clearVisited || f.visited == nil {
		f.resetVisited()
	} else if f.visitedWidth != f.AreasView.Width() || f.visitedHeight != f.AreasView.Height() {
		return nil, fmt.Errorf("area finder view resized from %dx%d to %dx%d while retaining visit state",
			f.visitedWidth, f.visitedHeight, f.AreasView.Width(), f.AreasView.Height())
	}
	return f.fill(origin), nil
}

// fill runs an iterative depth-first flood from origin, marking cells
// visited as it goes.
func (f *MapAreaFinder) fill(origin geometry.Point) *Area {
	if !f.AreasView.Contains(origin) || !f.AreasView.Get(origin) || f.isVisited(origin) {
		return nil
	}

	result := NewArea()
	pending := stack.New[geometry.Point]()
	pending.Push(origin)
	f.markVisited(origin)

	for pending.Size() > 0 {
		current := pending.Pop()
		result.Add(current)

		for _, neighbor := range f.Adjacency.Neighbors(current) {
			if !f.AreasView.Contains(neighbor) || !f.AreasView.Get(neighbor) || f.isVisited(neighbor) {
				continue
			}
			f.markVisited(neighbor)
			pending.Push(neighbor)
		}
	}
	return result
}

func (f *MapAreaFinder) resetVisited() {
	f.visitedWidth = f.AreasView.Width()
	f.visitedHeight = f.AreasView.Height()
	f.visited = make([]bool, f.visitedWidth*f.visitedHeight)
}

func (f *MapAreaFinder) isVisited(p geometry.Point) bool {
	return f.visited[p.Y*f.visitedWidth+p.X]
}

func (f *MapAreaFinder) markVisited(p geometry.Point) {
	f.visited[p.Y*f.visitedWidth+p.X] = true
}
