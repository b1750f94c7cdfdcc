package mapgen

import (
	"math/rand"

	"warren/pkg/engine/geometry"
)

// DungeonMazeSteps returns the step configuration for a classic
// rooms-and-mazes dungeon: carve rooms, fill the space between them with
// maze corridors, connect the maze pieces, trim the corridors back, then
// open doors into the rooms.
//
// The maze's corridors first land in their own list so the connector only
// joins corridors to corridors; the appender folds them into the canonical
// tunnels list afterward.
func DungeonMazeSteps(rng *rand.Rand) []Step {
	rooms := NewRoomsGeneration()
	rooms.RNG = rng

	maze := NewMazeGeneration()
	maze.TunnelsTag = TagMazeConnections
	maze.RNG = rng

	connect := NewClosestMapAreaConnection()
	connect.AreasTag = TagMazeConnections
	connect.TunnelsTag = TagTunnels
	connect.ConnectionPointSelector = &ClosestConnectionPointSelector{DistanceCalc: geometry.DistanceManhattan}
	connect.RNG = rng

	appendTunnels := NewAppendAreaLists(TagTunnels, TagMazeConnections)
	appendTunnels.RemoveAppendedComponent = true

	trim := NewTunnelDeadEndTrimming()
	trim.SaveDeadEndChance = 40
	trim.RNG = rng

	doors := NewRoomDoorConnection()
	doors.RNG = rng

	findDoors := NewDoorFinder()

	return []Step{rooms, maze, connect, appendTunnels, trim, doors, findDoors}
}

// CellularAutomataCaveSteps returns the step configuration for an organic
// cave map: random noise, smoothing, then connecting the resulting pockets.
func CellularAutomataCaveSteps(rng *rand.Rand) []Step {
	fill := NewRandomViewFill()
	fill.RNG = rng

	smooth := NewCellularAutomataAreaGeneration()

	findAreas := NewAreaFinder()
	findAreas.AdjacencyRule = smooth.AreaAdjacencyRule

	connect := NewClosestMapAreaConnection()
	connect.DistanceCalc = geometry.DistanceManhattan
	connect.RNG = rng

	return []Step{fill, smooth, findAreas, connect}
}

// BasicRandomRoomsSteps returns the step configuration for the simplest
// playable map: rooms chained together with L-shaped corridors.
func BasicRandomRoomsSteps(rng *rand.Rand) []Step {
	rooms := NewRoomsGeneration()
	rooms.RNG = rng

	toAreas := NewRectanglesToAreas()

	connect := NewOrderedMapAreaConnection()
	connect.RNG = rng

	return []Step{rooms, toAreas, connect}
}
