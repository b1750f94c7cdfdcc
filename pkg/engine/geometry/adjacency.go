package geometry

// AdjacencyRule defines which cells neighbor a given cell.
type AdjacencyRule int

// Adjacency rule constants.
const (
	// AdjacencyCardinals connects cells sharing an edge (4-way).
	AdjacencyCardinals AdjacencyRule = iota
	// AdjacencyDiagonals connects cells sharing only a corner.
	AdjacencyDiagonals
	// AdjacencyEightWay connects cells sharing an edge or a corner.
	AdjacencyEightWay
)

var (
	cardinalDirections = []Direction{Up, Down, Left, Right}
	diagonalDirections = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	eightWayDirections = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

	cardinalsClockwise = []Direction{Up, Right, Down, Left}
	diagonalsClockwise = []Direction{UpRight, DownRight, DownLeft, UpLeft}
	eightWayClockwise  = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
)

// String returns the string representation of an adjacency rule.
func (a AdjacencyRule) String() string {
	switch a {
	case AdjacencyCardinals:
		return "Cardinals"
	case AdjacencyDiagonals:
		return "Diagonals"
	default:
		return "EightWay"
	}
}

// DirectionsOfNeighbors returns the directions of cells this rule considers
// adjacent. The returned slice is shared; callers must not modify it.
func (a AdjacencyRule) DirectionsOfNeighbors() []Direction {
	switch a {
	case AdjacencyCardinals:
		return cardinalDirections
	case AdjacencyDiagonals:
		return diagonalDirections
	default:
		return eightWayDirections
	}
}

// DirectionsOfNeighborsClockwise returns the adjacent directions in clockwise
// order starting from Up (or UpRight for diagonals).
func (a AdjacencyRule) DirectionsOfNeighborsClockwise() []Direction {
	switch a {
	case AdjacencyCardinals:
		return cardinalsClockwise
	case AdjacencyDiagonals:
		return diagonalsClockwise
	default:
		return eightWayClockwise
	}
}

// Neighbors returns the positions adjacent to p under this rule.
func (a AdjacencyRule) Neighbors(p Point) []Point {
	dirs := a.DirectionsOfNeighbors()
	neighbors := make([]Point, len(dirs))
	for i, d := range dirs {
		neighbors[i] = d.Translate(p)
	}
	return neighbors
}
