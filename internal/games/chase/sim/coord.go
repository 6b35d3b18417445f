package sim

import "fmt"

// Coord is a grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighboring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir is one of the four axis-aligned unit steps.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// neighborOrder is the order adversaries enumerate their options in.
// Scripted choosers in tests index into this order.
var neighborOrder = [4]Dir{DirDown, DirUp, DirRight, DirLeft}

// Delta returns the (dx, dy) offset for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
