package model

import "fmt"

// Coord addresses a single cell of the grid.
type Coord struct {
	Col, Row int
}

func (c Coord) Add(d Dir) Coord {
	return Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// Index maps the coordinate onto a flat array of a grid with the given
// number of columns.
func (c Coord) Index(cols int) int {
	return c.Row*cols + c.Col
}

// DistSq is the squared euclidean distance between two coordinates.
func (c Coord) DistSq(o Coord) int {
	dc, dr := c.Col-o.Col, c.Row-o.Row
	return dc*dc + dr*dr
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Dir is a movement vector of at most one cell along one axis.
type Dir struct {
	Col, Row int
}

var (
	Still = Dir{}
	Down  = Dir{Col: 0, Row: 1}
	Up    = Dir{Col: 0, Row: -1}
	Right = Dir{Col: 1, Row: 0}
	Left  = Dir{Col: -1, Row: 0}
)

// Directions lists the four moves in enumeration order. Planners rely on
// this order for tie breaking.
var Directions = [4]Dir{Down, Up, Right, Left}

func (d Dir) Neg() Dir {
	return Dir{Col: -d.Col, Row: -d.Row}
}

func (d Dir) IsStill() bool {
	return d == Still
}

func (d Dir) String() string {
	switch d {
	case Still:
		return "still"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("n/a(%d,%d)", d.Col, d.Row)
	}
}

// Intent is a discrete signal coming from an input device.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
	IntentConfirm
)

// Dir returns the movement the intent asks for, Still for non directional
// intents.
func (i Intent) Dir() Dir {
	switch i {
	case IntentUp:
		return Up
	case IntentDown:
		return Down
	case IntentLeft:
		return Left
	case IntentRight:
		return Right
	default:
		return Still
	}
}

func (i Intent) Name() string {
	switch i {
	case IntentNone:
		return "NONE"
	case IntentUp:
		return "UP"
	case IntentDown:
		return "DOWN"
	case IntentLeft:
		return "LEFT"
	case IntentRight:
		return "RIGHT"
	case IntentQuit:
		return "QUIT"
	case IntentConfirm:
		return "CONFIRM"
	default:
		return fmt.Sprintf("n/a:%d", i)
	}
}
