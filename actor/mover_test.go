package actor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

// grid builds a terrain from rows of '.' and '#'.
func grid(rows ...string) *model.Grid {
	g := model.NewGrid(len(rows[0]), len(rows))
	for r, row := range rows {
		for c, char := range row {
			g.Cells[r][c] = char == '.'
		}
	}
	return g
}

func at(col, row int) model.Coord {
	return model.Coord{Col: col, Row: row}
}

func TestMoverValidMove(t *testing.T) {
	g := grid(
		"..#",
		".##",
	)
	m := NewMover(g, at(0, 0), 4)

	assert.True(t, m.ValidMove(model.Right))
	assert.True(t, m.ValidMove(model.Down))
	assert.False(t, m.ValidMove(model.Up), "off the grid")
	assert.False(t, m.ValidMove(model.Left), "off the grid")
	assert.True(t, m.ValidMove(model.Still))

	m.Pos = at(1, 0)
	assert.False(t, m.ValidMove(model.Right), "wall")
	assert.False(t, m.ValidMove(model.Down), "wall")
}

func TestMoverTurnAndAdvance(t *testing.T) {
	g := grid(
		"...",
		".#.",
	)
	m := NewMover(g, at(0, 1), 4)

	t.Run("invalid turn keeps commitment", func(t *testing.T) {
		m.Turn(model.Up)
		assert.Equal(t, model.Up, m.Movement)
		m.Turn(model.Right)
		assert.Equal(t, model.Up, m.Movement, "wall to the right")
		m.Turn(model.Left)
		assert.Equal(t, model.Up, m.Movement, "edge to the left")
	})

	t.Run("advance follows commitment", func(t *testing.T) {
		m.Advance()
		assert.Equal(t, at(0, 0), m.Pos)
		assert.Equal(t, model.Up, m.Movement)
	})

	t.Run("advance into edge stops", func(t *testing.T) {
		m.Advance()
		assert.Equal(t, at(0, 0), m.Pos)
		assert.Equal(t, model.Still, m.Movement)
	})

	t.Run("respawn", func(t *testing.T) {
		m.Turn(model.Right)
		m.Advance()
		assert.Equal(t, at(1, 0), m.Pos)
		m.Respawn()
		assert.Equal(t, at(0, 1), m.Pos)
		assert.Equal(t, model.Still, m.Movement)
	})
}

func TestMoverNeverLeavesTheWays(t *testing.T) {
	g, err := maze.Generate(maze.Config{Cols: 12, Rows: 12, LoopOdds: maze.DefaultLoopOdds}, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	m := NewMover(g, g.PlayerSpawn(), 3)
	dirs := []model.Dir{model.Still, model.Up, model.Down, model.Left, model.Right}
	for i := 0; i < 5000; i++ {
		m.Turn(dirs[rng.Intn(len(dirs))])
		m.Advance()
		require.True(t, g.Passable(m.Pos), "step %d at %v", i, m.Pos)
	}
}

func TestMoverCycle(t *testing.T) {
	m := NewMover(grid("..."), at(0, 0), 4)
	assert.Equal(t, Aligned, m.Phase())

	var aligned []bool
	for i := 0; i < 8; i++ {
		aligned = append(aligned, m.Tick())
	}
	assert.Equal(t, []bool{false, false, false, true, false, false, false, true}, aligned)

	m.Tick()
	assert.Equal(t, Moving, m.Phase())
	assert.Equal(t, 1, m.Frame())
	assert.Equal(t, 4, m.Frames())
}

func TestMoverOffset(t *testing.T) {
	m := NewMover(grid("...."), at(0, 0), 4)

	dx, dy := m.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.Turn(model.Right)
	m.Advance()
	require.Equal(t, at(1, 0), m.Pos)

	want := []float32{-1, -0.75, -0.5, -0.25}
	for frame, w := range want {
		dx, dy := m.Offset()
		assert.InDelta(t, w, dx, 1e-6, "frame %d", frame)
		assert.Zero(t, dy)
		m.Tick()
	}

	// drawing never touches the logical cell
	assert.Equal(t, at(1, 0), m.Pos)
	actor := m.Actor()
	assert.Equal(t, 1, actor.Col)
	assert.Equal(t, 1, actor.DCol)
	assert.InDelta(t, -1, actor.OffsetX, 1e-6)
}

func TestMoverClampsFrames(t *testing.T) {
	m := NewMover(grid(".."), at(0, 0), 0)
	assert.Equal(t, 1, m.Frames())
	assert.True(t, m.Tick())
}
