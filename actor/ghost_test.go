package actor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

type fixed model.Coord

func (f fixed) Target(Quarry) model.Coord { return model.Coord(f) }

type quarry struct {
	pos     model.Coord
	heading model.Dir
}

func (q quarry) Position() model.Coord { return q.pos }
func (q quarry) Heading() model.Dir    { return q.heading }

func TestPlanDeadEndReverses(t *testing.T) {
	g := grid(
		"#.#",
		"#.#",
		"...",
	)
	ghost := NewGhost(g, at(1, 0), 5, fixed(at(9, 9)))
	ghost.Movement = model.Up

	assert.Equal(t, model.Down, ghost.Plan(quarry{}))
}

func TestPlanCorridorKeepsGoing(t *testing.T) {
	g := grid(
		"#.#",
		"#.#",
		"#.#",
	)
	ghost := NewGhost(g, at(1, 1), 5, fixed(at(1, 9)))

	ghost.Movement = model.Up
	assert.Equal(t, model.Up, ghost.Plan(quarry{}), "target behind is ignored in a corridor")

	ghost.Movement = model.Down
	assert.Equal(t, model.Down, ghost.Plan(quarry{}))

	ghost.Movement = model.Still
	assert.Equal(t, model.Down, ghost.Plan(quarry{}), "first valid move when standing")
}

func TestPlanBendTurns(t *testing.T) {
	g := grid(
		"..",
		".#",
	)
	ghost := NewGhost(g, at(0, 0), 5, nil)
	ghost.Movement = model.Up
	assert.Equal(t, model.Right, ghost.Plan(quarry{}))

	ghost.Movement = model.Left
	assert.Equal(t, model.Down, ghost.Plan(quarry{}))
}

func TestPlanJunctionTargets(t *testing.T) {
	g := grid(
		".....",
		"##.##",
		"##.##",
	)
	tests := []struct {
		name   string
		target model.Coord
		want   model.Dir
	}{
		{"closest exit", at(0, 0), model.Left},
		{"closest is backtrack", at(4, 5), model.Right},
		{"tie goes to enumeration order", at(2, -5), model.Right},
		{"target far outside", at(-100, 3), model.Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ghost := NewGhost(g, at(2, 0), 5, fixed(tt.target))
			ghost.Movement = model.Up
			assert.Equal(t, tt.want, ghost.Plan(quarry{}))
		})
	}
}

func TestPlanCrossroads(t *testing.T) {
	g := grid(
		"#.#",
		"...",
		"#.#",
	)
	ghost := NewGhost(g, at(1, 1), 5, Chase{})
	ghost.Movement = model.Left

	assert.Equal(t, model.Up, ghost.Plan(quarry{pos: at(1, -3)}))
	assert.Equal(t, model.Down, ghost.Plan(quarry{pos: at(1, 4)}))
	// the player sits behind the ghost, it may not reverse
	assert.Equal(t, model.Down, ghost.Plan(quarry{pos: at(4, 1)}))
}

func TestPlanBoxedIn(t *testing.T) {
	g := grid(
		"#.#",
		"###",
	)
	ghost := NewGhost(g, at(0, 1), 5, nil)
	assert.Equal(t, model.Still, ghost.Plan(quarry{}))
}

// Across random mazes a ghost with two or more exits never reverses.
func TestPlanNeverBacktracksWithChoices(t *testing.T) {
	g, err := maze.Generate(maze.Config{Cols: 16, Rows: 16, LoopOdds: maze.DefaultLoopOdds}, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	wander := Wander{Jitter: 15, Rand: rng}
	ghost := NewGhost(g, g.GhostSpawn(), 5, wander)
	player := quarry{pos: g.PlayerSpawn()}

	for i := 0; i < 3000; i++ {
		exits := 0
		for _, d := range model.Directions {
			if ghost.ValidMove(d) {
				exits++
			}
		}
		backtrack := ghost.Movement.Neg()
		d := ghost.Plan(player)
		require.True(t, ghost.ValidMove(d), "step %d", i)
		if exits >= 2 && !backtrack.IsStill() {
			require.NotEqual(t, backtrack, d, "step %d at %v", i, ghost.Pos)
		}
		ghost.Turn(d)
		ghost.Advance()
	}
}
