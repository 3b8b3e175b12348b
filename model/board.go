package model

// Cell is the renderer facing view of one grid position.
type Cell struct {
	Col, Row int
	Wall     bool
	Dot      bool
}

// Board decorates a grid with collectibles. Renderers only read it.
type Board struct {
	Grid   *Grid
	Matrix [][]*Cell
	dots   int
	total  int
}

// NewBoard puts a dot on every way except the two spawn cells.
func NewBoard(g *Grid) *Board {
	matrix := make([][]*Cell, 0, g.Rows)
	dots := 0
	for r := 0; r < g.Rows; r++ {
		row := make([]*Cell, 0, g.Cols)
		for c := 0; c < g.Cols; c++ {
			pos := Coord{Col: c, Row: r}
			cell := &Cell{Col: c, Row: r, Wall: !g.Cells[r][c]}
			if !cell.Wall && !g.IsSpawn(pos) {
				cell.Dot = true
				dots++
			}
			row = append(row, cell)
		}
		matrix = append(matrix, row)
	}
	return &Board{Grid: g, Matrix: matrix, dots: dots, total: dots}
}

// Cell returns nil outside the grid.
func (b *Board) Cell(c Coord) *Cell {
	if !b.Grid.InBounds(c) {
		return nil
	}
	return b.Matrix[c.Row][c.Col]
}

// Eat removes the dot at c and reports whether there was one.
func (b *Board) Eat(c Coord) bool {
	cell := b.Cell(c)
	if cell == nil || !cell.Dot {
		return false
	}
	cell.Dot = false
	b.dots--
	return true
}

// Dots is the number of dots left.
func (b *Board) Dots() int {
	return b.dots
}

// Total is the number of dots the board started with.
func (b *Board) Total() int {
	return b.total
}
