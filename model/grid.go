package model

import "strings"

const (
	WayRune  = '.'
	WallRune = '#'
)

// Grid is the passability map of a maze. Cells are stored row major,
// true marks a way.
type Grid struct {
	Cols, Rows int
	Cells      [][]bool
}

// NewGrid returns a grid of the given size filled with walls.
func NewGrid(cols, rows int) *Grid {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Grid{Cols: cols, Rows: rows, Cells: cells}
}

func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Passable reports whether c lies inside the grid and is a way.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.Cells[c.Row][c.Col]
}

// Open marks c as a way. Out of bounds coordinates are ignored.
func (g *Grid) Open(c Coord) {
	if g.InBounds(c) {
		g.Cells[c.Row][c.Col] = true
	}
}

// PlayerSpawn is the bottom left corner.
func (g *Grid) PlayerSpawn() Coord {
	return Coord{Col: 0, Row: g.Rows - 1}
}

// GhostSpawn is the top right corner.
func (g *Grid) GhostSpawn() Coord {
	return Coord{Col: g.Cols - 1, Row: 0}
}

func (g *Grid) IsSpawn(c Coord) bool {
	return c == g.PlayerSpawn() || c == g.GhostSpawn()
}

// Ways counts passable cells.
func (g *Grid) Ways() int {
	n := 0
	for _, row := range g.Cells {
		for _, way := range row {
			if way {
				n++
			}
		}
	}
	return n
}

// String renders one line per row, '.' for ways and '#' for walls.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Cells {
		for _, way := range row {
			if way {
				b.WriteByte(WayRune)
			} else {
				b.WriteByte(WallRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
