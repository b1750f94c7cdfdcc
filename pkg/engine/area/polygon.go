package area

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"warren/pkg/engine/geometry"
)

// PolygonArea is an immutable polygon rasterized on the lattice. It exposes
// its corners, the rasterized outer edge (one sub-area per side, in corner
// declaration order), and the interior computed with a scanline even-odd
// fill. Transforms return new polygons and never mutate the receiver.
type PolygonArea struct {
	corners   []geometry.Point
	algorithm geometry.LineAlgorithm

	outerPoints *MultiArea
	innerPoints *Area
	points      *MultiArea

	// segment index lists per outer-edge point, for the even-odd fill
	segmentsByPoint map[geometry.Point][]int
}

// NewPolygonArea creates a polygon from at least three corner points,
// rasterizing its sides with the given line algorithm.
func NewPolygonArea(algorithm geometry.LineAlgorithm, corners ...geometry.Point) (*PolygonArea, error) {
	if len(corners) < 3 {
		return nil, fmt.Errorf("polygon requires at least 3 corners, got %d", len(corners))
	}
	poly := &PolygonArea{
		corners:         append([]geometry.Point(nil), corners...),
		algorithm:       algorithm,
		outerPoints:     NewMultiArea(),
		innerPoints:     NewArea(),
		segmentsByPoint: make(map[geometry.Point][]int),
	}
	poly.rasterizeOuter()
	poly.fillInner()
	poly.points = NewMultiArea(poly.outerPoints, poly.innerPoints)
	return poly, nil
}

// RectanglePolygon creates the polygon covering the given rectangle.
func RectanglePolygon(rect geometry.Rectangle, algorithm geometry.LineAlgorithm) (*PolygonArea, error) {
	return NewPolygonArea(algorithm,
		rect.MinExtent,
		geometry.NewPoint(rect.MaxExtent.X, rect.MinExtent.Y),
		rect.MaxExtent,
		geometry.NewPoint(rect.MinExtent.X, rect.MaxExtent.Y),
	)
}

// Parallelogram creates a parallelogram with a horizontal top and bottom.
// With fromTop the origin is the top-left corner and the shape leans right
// going down; otherwise the origin is the bottom-left corner and the shape
// leans right going up.
func Parallelogram(origin geometry.Point, width, height int, fromTop bool, algorithm geometry.LineAlgorithm) (*PolygonArea, error) {
	if fromTop {
		return NewPolygonArea(algorithm,
			origin,
			origin.Translate(width, 0),
			origin.Translate(width+height, height),
			origin.Translate(height, height),
		)
	}
	return NewPolygonArea(algorithm,
		origin,
		origin.Translate(width, 0),
		origin.Translate(width+height, -height),
		origin.Translate(height, -height),
	)
}

// RegularPolygon creates a polygon with the given number of equal sides
// around a center. The radius must be positive.
func RegularPolygon(center geometry.Point, sides int, radius float64, algorithm geometry.LineAlgorithm) (*PolygonArea, error) {
	if sides < 3 {
		return nil, fmt.Errorf("regular polygon requires at least 3 sides, got %d", sides)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("regular polygon radius must be positive, got %v", radius)
	}
	corners := make([]geometry.Point, sides)
	increment := 360.0 / float64(sides)
	for i := range corners {
		corners[i] = pointOnCircle(center, radius, float64(i)*increment-90)
	}
	return NewPolygonArea(algorithm, corners...)
}

// RegularStar creates a star with the given number of points, alternating
// between the outer and inner radii. Both radii must be positive.
func RegularStar(center geometry.Point, points int, outerRadius, innerRadius float64, algorithm geometry.LineAlgorithm) (*PolygonArea, error) {
	if points < 3 {
		return nil, fmt.Errorf("regular star requires at least 3 points, got %d", points)
	}
	if outerRadius <= 0 {
		return nil, fmt.Errorf("regular star outer radius must be positive, got %v", outerRadius)
	}
	if innerRadius <= 0 {
		return nil, fmt.Errorf("regular star inner radius must be positive, got %v", innerRadius)
	}
	corners := make([]geometry.Point, 0, points*2)
	increment := 360.0 / float64(points*2)
	for i := 0; i < points*2; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		corners = append(corners, pointOnCircle(center, radius, float64(i)*increment-90))
	}
	return NewPolygonArea(algorithm, corners...)
}

func pointOnCircle(center geometry.Point, radius, degrees float64) geometry.Point {
	theta := degrees * math.Pi / 180
	return geometry.NewPoint(
		center.X+int(math.Round(radius*math.Cos(theta))),
		center.Y+int(math.Round(radius*math.Sin(theta))),
	)
}

// Corners returns the polygon's corners in declaration order. Callers must
// not modify the returned slice.
func (p *PolygonArea) Corners() []geometry.Point {
	return p.corners
}

// LineAlgorithm returns the algorithm the polygon's sides were rasterized
// with.
func (p *PolygonArea) LineAlgorithm() geometry.LineAlgorithm {
	return p.algorithm
}

// OuterPoints returns the rasterized edge, one sub-area per side.
func (p *PolygonArea) OuterPoints() *MultiArea {
	return p.outerPoints
}

// InnerPoints returns the interior of the polygon.
func (p *PolygonArea) InnerPoints() *Area {
	return p.innerPoints
}

// Count returns the number of points in the polygon, edge and interior.
func (p *PolygonArea) Count() int {
	return p.points.Count()
}

// At returns the point at the given index, edge points first.
func (p *PolygonArea) At(index int) geometry.Point {
	return p.points.At(index)
}

// Contains checks if the polygon's edge or interior includes the point.
func (p *PolygonArea) Contains(pt geometry.Point) bool {
	return p.points.Contains(pt)
}

// Bounds returns the polygon's bounding rectangle.
func (p *PolygonArea) Bounds() geometry.Rectangle {
	return p.points.Bounds()
}

// Points returns every point of the polygon, edge points first.
func (p *PolygonArea) Points() []geometry.Point {
	return p.points.Points()
}

// Matches returns true if the other polygon has the same corners in the
// same cyclic order. Reversed corner order does not match.
func (p *PolygonArea) Matches(other *PolygonArea) bool {
	if other == nil || len(p.corners) != len(other.corners) {
		return false
	}
	n := len(p.corners)
	for offset := 0; offset < n; offset++ {
		if other.corners[offset] != p.corners[0] {
			continue
		}
		matched := true
		for i := 1; i < n; i++ {
			if p.corners[i] != other.corners[(offset+i)%n] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// Translate returns a new polygon moved by the given delta.
func (p *PolygonArea) Translate(delta geometry.Point) *PolygonArea {
	return p.transform(func(c geometry.Point) geometry.Point {
		return c.Add(delta)
	})
}

// Rotate returns a new polygon rotated clockwise by the given degrees
// around the center of the polygon's bounds.
func (p *PolygonArea) Rotate(degrees float64) *PolygonArea {
	return p.RotateAround(degrees, p.Bounds().Center())
}

// RotateAround returns a new polygon rotated clockwise by the given degrees
// around an origin point.
func (p *PolygonArea) RotateAround(degrees float64, origin geometry.Point) *PolygonArea {
	radians := degrees * math.Pi / 180
	sin, cos := math.Sin(radians), math.Cos(radians)
	return p.transform(func(c geometry.Point) geometry.Point {
		dx := float64(c.X - origin.X)
		dy := float64(c.Y - origin.Y)
		return geometry.NewPoint(
			origin.X+int(math.Round(dx*cos-dy*sin)),
			origin.Y+int(math.Round(dx*sin+dy*cos)),
		)
	})
}

// FlipHorizontal returns a new polygon mirrored across the vertical line
// x = axisX.
func (p *PolygonArea) FlipHorizontal(axisX int) *PolygonArea {
	return p.transform(func(c geometry.Point) geometry.Point {
		return geometry.NewPoint(2*axisX-c.X, c.Y)
	})
}

// FlipVertical returns a new polygon mirrored across the horizontal line
// y = axisY.
func (p *PolygonArea) FlipVertical(axisY int) *PolygonArea {
	return p.transform(func(c geometry.Point) geometry.Point {
		return geometry.NewPoint(c.X, 2*axisY-c.Y)
	})
}

// Transpose returns a new polygon with x and y swapped relative to the
// given axis point.
func (p *PolygonArea) Transpose(axis geometry.Point) *PolygonArea {
	return p.transform(func(c geometry.Point) geometry.Point {
		return geometry.NewPoint(axis.X+(c.Y-axis.Y), axis.Y+(c.X-axis.X))
	})
}

func (p *PolygonArea) transform(fn func(geometry.Point) geometry.Point) *PolygonArea {
	corners := make([]geometry.Point, len(p.corners))
	for i, c := range p.corners {
		corners[i] = fn(c)
	}
	// Corner count is preserved, so reconstruction cannot fail.
	poly, err := NewPolygonArea(p.algorithm, corners...)
	if err != nil {
		panic(err)
	}
	return poly
}

// rasterizeOuter builds one sub-area per side and records which segments
// each edge point belongs to.
func (p *PolygonArea) rasterizeOuter() {
	n := len(p.corners)
	for i := 0; i < n; i++ {
		side := NewArea()
		for _, pt := range geometry.Line(p.corners[i], p.corners[(i+1)%n], p.algorithm) {
			side.Add(pt)
			if !containsInt(p.segmentsByPoint[pt], i) {
				p.segmentsByPoint[pt] = append(p.segmentsByPoint[pt], i)
			}
		}
		p.outerPoints.AddSubArea(side)
	}
}

// fillInner runs the scanline even-odd fill. A row position on the outer
// edge counts a segment as crossed only when one of that segment's
// endpoints lies strictly above the row; interior positions are those with
// an odd number of distinct crossed segments so far on the row.
func (p *PolygonArea) fillInner() {
	bounds := p.outerPoints.Bounds()
	n := len(p.corners)
	for y := bounds.MinExtent.Y + 1; y < bounds.MaxExtent.Y; y++ {
		crossed := mapset.New[int]()
		for x := bounds.MinExtent.X; x < bounds.MaxExtent.X; x++ {
			pt := geometry.NewPoint(x, y)
			if segments, onEdge := p.segmentsByPoint[pt]; onEdge {
				for _, seg := range segments {
					if p.corners[seg].Y < y || p.corners[(seg+1)%n].Y < y {
						crossed.Put(seg)
					}
				}
			} else if crossed.Size()%2 == 1 {
				p.innerPoints.Add(pt)
			}
		}
	}
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
