package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazechase/actor"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

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

func config(playerFrames, ghostFrames, lives int) Config {
	return Config{
		PlayerFrames: playerFrames,
		GhostFrames:  ghostFrames,
		Lives:        lives,
		Strategies:   []actor.Strategy{actor.StrategyChase},
		Aim:          actor.DefaultAim,
	}
}

// corridor is a single row, the player spawns on the left end and the ghost
// on the right end, with three dots in between.
func corridor(t *testing.T, cfg Config) *Game {
	g, err := New(cfg, grid("....."), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return g
}

func kinds(events []Event) []EventKind {
	var out []EventKind
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestNewValidates(t *testing.T) {
	g := grid(".....")
	rng := rand.New(rand.NewSource(1))

	_, err := New(config(0, 5, 3), g, rng)
	assert.ErrorIs(t, err, ErrInvalidFrames)

	_, err = New(config(5, 0, 3), g, rng)
	assert.ErrorIs(t, err, ErrInvalidFrames)

	_, err = New(config(5, 5, 0), g, rng)
	assert.ErrorIs(t, err, ErrInvalidLives)

	cfg := config(5, 5, 3)
	cfg.Strategies = nil
	_, err = New(cfg, g, rng)
	assert.ErrorIs(t, err, ErrNoGhosts)

	cfg.Strategies = []actor.Strategy{actor.Strategy(9)}
	_, err = New(cfg, g, rng)
	assert.Error(t, err)
}

func TestNewMovesGhostsOffSpawn(t *testing.T) {
	g := corridor(t, config(1, 1, 3))

	require.Len(t, g.Ghosts(), 1)
	ghost := g.Ghosts()[0]
	assert.Equal(t, at(3, 0), ghost.Pos)
	assert.Equal(t, model.Left, ghost.Movement)
	assert.Equal(t, at(4, 0), ghost.Spawn)

	assert.Equal(t, at(0, 0), g.Player().Pos)
	assert.Equal(t, 3, g.Board().Dots())
	assert.Equal(t, Playing, g.State())
}

func TestCatchWhilePlayerAligned(t *testing.T) {
	g := corridor(t, config(1, 1000, 3))
	player, ghost := g.Player(), g.Ghosts()[0]

	player.Pos, player.Movement = at(2, 0), model.Right
	ghost.Pos = at(2, 0)

	events := g.Tick()
	assert.Equal(t, []Event{
		{Kind: EventDot, Pos: at(2, 0)},
		{Kind: EventCaught, Pos: at(2, 0)},
	}, events)

	assert.Equal(t, 2, player.Lives)
	assert.Equal(t, 1, player.Points, "the dot under the catch still counts")
	assert.Equal(t, at(0, 0), player.Pos)
	assert.Equal(t, model.Still, player.Movement)
	assert.Equal(t, at(4, 0), ghost.Pos)
	assert.Equal(t, model.Still, ghost.Movement)
	assert.Equal(t, Playing, g.State())

	f := g.Snapshot()
	assert.True(t, f.Caught)
	assert.Equal(t, []model.Coord{at(2, 0)}, f.Eaten)
	assert.Equal(t, 2, f.Lives)
	assert.Equal(t, 2, f.DotsLeft)

	g.Tick()
	assert.False(t, g.Snapshot().Caught, "caught only flags the tick it happened on")
}

func TestCatchWhileGhostsAligned(t *testing.T) {
	g := corridor(t, config(1000, 1, 3))
	player, ghost := g.Player(), g.Ghosts()[0]
	ghost.Pos = player.Pos

	events := g.Tick()
	assert.Equal(t, []EventKind{EventCaught}, kinds(events))
	assert.Equal(t, 2, player.Lives)
	assert.Equal(t, at(0, 0), player.Pos)
	// after the respawn the ghost plans again in the same tick
	assert.Equal(t, at(3, 0), ghost.Pos)
	assert.Equal(t, model.Left, ghost.Movement)
}

func TestGhostsMoveInStep(t *testing.T) {
	cfg := config(1000, 3, 3)
	cfg.Strategies = []actor.Strategy{actor.StrategyChase, actor.StrategyChase}
	g := corridor(t, cfg)
	require.Len(t, g.Ghosts(), 2)

	g.Tick()
	g.Tick()
	for _, ghost := range g.Ghosts() {
		assert.Equal(t, at(3, 0), ghost.Pos)
		assert.Equal(t, 2, ghost.Frame())
	}

	g.Tick()
	for _, ghost := range g.Ghosts() {
		assert.Equal(t, at(2, 0), ghost.Pos)
		assert.Equal(t, model.Left, ghost.Movement)
		assert.Equal(t, actor.Aligned, ghost.Phase())
	}
}

func TestLastLifeLoses(t *testing.T) {
	g := corridor(t, config(1, 1000, 1))
	g.Ghosts()[0].Pos = g.Player().Pos

	events := g.Tick()
	assert.Equal(t, []EventKind{EventCaught, EventLost}, kinds(events))
	assert.Equal(t, Lost, g.State())
	assert.True(t, g.Over())
	assert.Equal(t, "LOST", g.Snapshot().State)

	assert.Nil(t, g.Tick(), "nothing happens once the game is over")
	assert.Equal(t, model.Result{Won: false, Points: 0, Total: 3}, g.Result())
}

func TestEatingEveryDotWins(t *testing.T) {
	g, err := New(config(1, 1000, 3), grid(
		"...",
		".#.",
		"...",
	), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 6, g.Board().Total())
	require.Equal(t, at(2, 1), g.Ghosts()[0].Pos)

	for _, c := range []model.Coord{at(0, 0), at(1, 0), at(2, 1), at(1, 2), at(2, 2)} {
		require.True(t, g.Board().Eat(c))
	}

	g.Steer(model.IntentUp)
	assert.Empty(t, g.Tick())
	assert.Equal(t, at(0, 1), g.Player().Pos)

	events := g.Tick()
	assert.Equal(t, []Event{
		{Kind: EventDot, Pos: at(0, 1)},
		{Kind: EventWon, Pos: at(0, 1)},
	}, events)
	assert.Equal(t, Won, g.State())
	assert.Equal(t, model.Result{Won: true, Points: 1, Total: 6}, g.Result())
}

func TestSteerAppliesWhenAligned(t *testing.T) {
	g := corridor(t, config(3, 1000, 3))
	player := g.Player()

	g.Steer(model.IntentRight)
	g.Tick()
	g.Tick()
	assert.Equal(t, at(0, 0), player.Pos, "mid cycle nothing moves logically")
	g.Tick()
	assert.Equal(t, at(1, 0), player.Pos)
	assert.Equal(t, model.Right, player.Movement)

	g.Steer(model.IntentUp)
	g.Steer(model.IntentNone)
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	assert.Equal(t, at(2, 0), player.Pos, "blocked turn keeps the commitment")
	assert.Equal(t, 1, player.Points)
}

func TestSteerQuit(t *testing.T) {
	g := corridor(t, config(1, 1, 3))
	g.Steer(model.IntentQuit)
	assert.Equal(t, Quit, g.State())
	assert.Nil(t, g.Tick())
	assert.False(t, g.Result().Won)
}

func TestSnapshot(t *testing.T) {
	g := corridor(t, config(4, 4, 3))
	g.Tick()

	f := g.Snapshot()
	assert.Equal(t, int64(1), f.Tick)
	assert.Equal(t, "PLAYING", f.State)
	require.Len(t, f.Ghosts, 1)
	assert.Equal(t, 3, f.Ghosts[0].Col)
	assert.Equal(t, -1, f.Ghosts[0].DCol)
	assert.InDelta(t, 0.75, f.Ghosts[0].OffsetX, 1e-6, "a quarter into the cycle, three quarters behind")
	assert.Equal(t, 3, f.Lives)
}

// A long game on a generated maze keeps every mover on a way and the score
// in step with the board.
func TestPlaysThroughGeneratedMaze(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	grid, err := maze.Generate(maze.Config{Cols: 11, Rows: 11, LoopOdds: maze.DefaultLoopOdds}, rng)
	require.NoError(t, err)

	cfg := DefaultConfig
	cfg.PlayerFrames, cfg.GhostFrames = 2, 3
	g, err := New(cfg, grid, rng)
	require.NoError(t, err)
	require.Len(t, g.Ghosts(), 5)

	dirs := []model.Intent{model.IntentUp, model.IntentDown, model.IntentLeft, model.IntentRight}
	for i := 0; i < 20000 && !g.Over(); i++ {
		if i%7 == 0 {
			g.Steer(dirs[rng.Intn(len(dirs))])
		}
		g.Tick()
		require.True(t, grid.Passable(g.Player().Pos))
		for _, ghost := range g.Ghosts() {
			require.True(t, grid.Passable(ghost.Pos))
		}
		require.Equal(t, g.Board().Total()-g.Board().Dots(), g.Player().Points)
		require.True(t, g.Player().Lives >= 0)
	}
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "PLAYING", Playing.Name())
	assert.Equal(t, "WON", Won.Name())
	assert.Equal(t, "QUIT", Quit.Name())
	assert.Equal(t, "N/A(0)", State(0).Name())
}
