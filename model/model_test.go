package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoord(t *testing.T) {
	c := Coord{Col: 3, Row: 2}

	assert.Equal(t, Coord{Col: 4, Row: 2}, c.Add(Right))
	assert.Equal(t, Coord{Col: 3, Row: 1}, c.Add(Up))
	assert.Equal(t, 2*10+3, c.Index(10))
	assert.Equal(t, 13, c.DistSq(Coord{Col: 1, Row: -1}))
	assert.Equal(t, "(3,2)", c.String())
}

func TestIndexIsBijectiveOnNonSquareGrid(t *testing.T) {
	cols, rows := 7, 3
	seen := map[int]Coord{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Coord{Col: c, Row: r}
			i := pos.Index(cols)
			prev, dup := seen[i]
			assert.False(t, dup, "%v collides with %v", pos, prev)
			seen[i] = pos
		}
	}
	assert.Len(t, seen, cols*rows)
}

func TestDir(t *testing.T) {
	assert.Equal(t, Up, Down.Neg())
	assert.Equal(t, Left, Right.Neg())
	assert.Equal(t, Still, Still.Neg())
	assert.True(t, Still.IsStill())
	assert.False(t, Left.IsStill())
	assert.Equal(t, [4]Dir{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}, Directions)
}

func TestIntentDir(t *testing.T) {
	assert.Equal(t, Up, IntentUp.Dir())
	assert.Equal(t, Down, IntentDown.Dir())
	assert.Equal(t, Left, IntentLeft.Dir())
	assert.Equal(t, Right, IntentRight.Dir())
	assert.Equal(t, Still, IntentQuit.Dir())
	assert.Equal(t, "CONFIRM", IntentConfirm.Name())
}

func TestGrid(t *testing.T) {
	g := NewGrid(4, 3)
	g.Open(Coord{Col: 0, Row: 2})
	g.Open(Coord{Col: 3, Row: 0})
	g.Open(Coord{Col: 9, Row: 9})

	assert.True(t, g.Passable(Coord{Col: 0, Row: 2}))
	assert.False(t, g.Passable(Coord{Col: 1, Row: 1}))
	assert.False(t, g.Passable(Coord{Col: -1, Row: 0}))
	assert.False(t, g.Passable(Coord{Col: 4, Row: 0}))
	assert.Equal(t, Coord{Col: 0, Row: 2}, g.PlayerSpawn())
	assert.Equal(t, Coord{Col: 3, Row: 0}, g.GhostSpawn())
	assert.Equal(t, 2, g.Ways())
	assert.Equal(t, "###.\n####\n.###\n", g.String())
}

func TestBoard(t *testing.T) {
	g := NewGrid(3, 2)
	for c := 0; c < 3; c++ {
		for r := 0; r < 2; r++ {
			g.Open(Coord{Col: c, Row: r})
		}
	}
	g.Cells[0][1] = false

	b := NewBoard(g)
	// 5 ways minus the two spawns
	assert.Equal(t, 3, b.Total())
	assert.Equal(t, 3, b.Dots())
	assert.False(t, b.Cell(g.PlayerSpawn()).Dot)
	assert.False(t, b.Cell(g.GhostSpawn()).Dot)
	assert.True(t, b.Cell(Coord{Col: 1, Row: 0}).Wall)
	assert.Nil(t, b.Cell(Coord{Col: 3, Row: 0}))

	assert.True(t, b.Eat(Coord{Col: 1, Row: 1}))
	assert.False(t, b.Eat(Coord{Col: 1, Row: 1}))
	assert.False(t, b.Eat(Coord{Col: 1, Row: 0}))
	assert.Equal(t, 2, b.Dots())
	assert.Equal(t, 3, b.Total())
}
