package mapgen

import "warren/pkg/engine/geometry"

// RoomDoors tracks the doors carved into the walls of a single room,
// bucketed by which side of the room each door sits on.
type RoomDoors struct {
	room    geometry.Rectangle
	bySide  map[geometry.Direction][]geometry.Point
	byPoint map[geometry.Point]string
	order   []geometry.Point
}

// newRoomDoors creates an empty door record for a room.
func newRoomDoors(room geometry.Rectangle) *RoomDoors {
	return &RoomDoors{
		room:    room,
		bySide:  make(map[geometry.Direction][]geometry.Point),
		byPoint: make(map[geometry.Point]string),
	}
}

// Room returns the room's inner rectangle.
func (r *RoomDoors) Room() geometry.Rectangle {
	return r.room
}

// Doors returns every recorded door position in insertion order.
func (r *RoomDoors) Doors() []geometry.Point {
	return r.order
}

// DoorsOnSide returns the doors on one cardinal side of the room.
func (r *RoomDoors) DoorsOnSide(side geometry.Direction) []geometry.Point {
	return r.bySide[side]
}

// StepFor returns the name of the step that carved the given door, or ""
// when the position is not a recorded door.
func (r *RoomDoors) StepFor(door geometry.Point) string {
	return r.byPoint[door]
}

// add records a door, inferring its side from the room's one-cell
// expansion. A position recorded twice keeps its first producing step.
func (r *RoomDoors) add(step string, door geometry.Point) {
	if _, exists := r.byPoint[door]; exists {
		return
	}
	wall := r.room.Expand(1, 1)
	for _, side := range geometry.AdjacencyCardinals.DirectionsOfNeighborsClockwise() {
		if wall.IsOnSide(door, side) {
			r.bySide[side] = append(r.bySide[side], door)
			break
		}
	}
	r.byPoint[door] = step
	r.order = append(r.order, door)
}

// DoorList maps each room to its recorded doors.
type DoorList struct {
	byRoom map[geometry.Rectangle]*RoomDoors
	rooms  []geometry.Rectangle
}

// NewDoorList creates an empty door list.
func NewDoorList() *DoorList {
	return &DoorList{byRoom: make(map[geometry.Rectangle]*RoomDoors)}
}

// AddDoor records a door for a room, created by the named step.
func (d *DoorList) AddDoor(step string, room geometry.Rectangle, door geometry.Point) {
	doors, ok := d.byRoom[room]
	if !ok {
		doors = newRoomDoors(room)
		d.byRoom[room] = doors
		d.rooms = append(d.rooms, room)
	}
	doors.add(step, door)
}

// Rooms returns the rooms with recorded doors, in first-seen order.
func (d *DoorList) Rooms() []geometry.Rectangle {
	return d.rooms
}

// DoorsFor returns the door record for a room, or nil when the room has no
// recorded doors.
func (d *DoorList) DoorsFor(room geometry.Rectangle) *RoomDoors {
	return d.byRoom[room]
}
