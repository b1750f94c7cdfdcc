package geometry

// LineAlgorithm selects the rasterization used to turn a pair of endpoints
// into a run of lattice points.
type LineAlgorithm int

// Line algorithm constants.
const (
	// LineBresenham rasterizes with Bresenham's algorithm (8-way steps).
	LineBresenham LineAlgorithm = iota
	// LineOrthogonal walks the x distance first, then the y distance
	// (4-way steps only).
	LineOrthogonal
)

// Line returns the points of the line from start to end, both endpoints
// included, rasterized by the chosen algorithm.
func Line(start, end Point, algorithm LineAlgorithm) []Point {
	if algorithm == LineOrthogonal {
		return lineOrthogonal(start, end)
	}
	return lineBresenham(start, end)
}

// lineBresenham steps along the longer axis, mirroring the line-of-sight
// walk the renderer uses.
func lineBresenham(start, end Point) []Point {
	dx := end.X - start.X
	dy := end.Y - start.Y

	absDx := abs(dx)
	absDy := abs(dy)

	stepX := sign(dx)
	stepY := sign(dy)

	points := []Point{start}
	x, y := start.X, start.Y

	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != end.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy
			points = append(points, Point{X: x, Y: y})
		}
	} else {
		err := 2*absDx - absDy
		for y != end.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// lineOrthogonal walks horizontally to end.X, then vertically to end.Y.
func lineOrthogonal(start, end Point) []Point {
	stepX := sign(end.X - start.X)
	stepY := sign(end.Y - start.Y)

	points := []Point{start}
	x, y := start.X, start.Y
	for x != end.X {
		x += stepX
		points = append(points, Point{X: x, Y: y})
	}
	for y != end.Y {
		y += stepY
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1 depending on the sign of x.
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
