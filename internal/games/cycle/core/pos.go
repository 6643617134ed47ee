package core

import "fmt"

// Pos is a cell on the board.
// X increases to the right, Y increases upward (rows are read bottom-to-top).
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by v.
func (p Pos) Add(v Vec) Pos {
	return Pos{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Step returns the neighbour of p in direction d.
func (p Pos) Step(d Dir) Pos {
	return p.Add(d.Vec())
}

// Vec is a movement request.
type Vec struct {
	DX int
	DY int
}

// V is a convenience constructor for Vec.
func V(dx, dy int) Vec {
	return Vec{DX: dx, DY: dy}
}

// IsUnitAxis reports whether v moves exactly one cell along one axis.
func (v Vec) IsUnitAxis() bool {
	return abs(v.DX)+abs(v.DY) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Dir is one of the four movement directions.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Vec returns the unit vector for d. Up is +Y.
func (d Dir) Vec() Vec {
	switch d {
	case DirUp:
		return Vec{DX: 0, DY: 1}
	case DirRight:
		return Vec{DX: 1, DY: 0}
	case DirDown:
		return Vec{DX: 0, DY: -1}
	case DirLeft:
		return Vec{DX: -1, DY: 0}
	default:
		return Vec{}
	}
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
