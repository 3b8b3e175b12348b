/*
Package maze builds the passability grids the game is played on.

Random grids come from a randomized Kruskal over a double resolution grid:
positions with an even column and an even row host rooms, the positions
between them host walls that may be knocked down. Every edge joining two
unconnected regions is taken, so the result is always connected; edges
closing a cycle are kept with a small probability to make the maze loopy.

Preset grids are parsed from a text layout and checked against the same
invariants.
*/
package maze

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/model"
)

const DefaultLoopOdds = 8

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	ErrInvalidLoopOdds   = errors.New("loop odds must not be negative")
)

// Source is the randomness the generator draws from. *rand.Rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
	Intn(n int) int
}

type Config struct {
	Cols, Rows int
	// LoopOdds keeps a cycle closing edge with probability 1/LoopOdds.
	// Zero never keeps one and yields a perfect maze.
	LoopOdds int
}

type edge struct {
	a, b model.Coord
}

func (e edge) mid() model.Coord {
	return model.Coord{Col: (e.a.Col + e.b.Col) / 2, Row: (e.a.Row + e.b.Row) / 2}
}

// Generate returns a connected grid with both spawn cells open. The layout is
// fully determined by the draws made from src.
func Generate(cfg Config, src Source) (*model.Grid, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Cols, cfg.Rows)
	}
	if cfg.LoopOdds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLoopOdds, cfg.LoopOdds)
	}

	grid := model.NewGrid(cfg.Cols, cfg.Rows)
	edges := candidateEdges(cfg.Cols, cfg.Rows)
	src.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	set := NewCellSet(cfg.Cols, cfg.Rows)
	loops := 0
	for len(edges) > 0 {
		e := edges[len(edges)-1]
		edges = edges[:len(edges)-1]

		if !set.Connected(e.a, e.b) {
			set.Union(e.a, e.b)
		} else if cfg.LoopOdds == 0 || src.Intn(cfg.LoopOdds) != 0 {
			continue
		} else {
			loops++
		}
		grid.Open(e.a)
		grid.Open(e.b)
		grid.Open(e.mid())
	}

	grid.Open(grid.PlayerSpawn())
	grid.Open(grid.GhostSpawn())

	log.WithFields(log.Fields{
		"cols":  cfg.Cols,
		"rows":  cfg.Rows,
		"loops": loops,
		"ways":  grid.Ways(),
	}).Debug("maze generated")
	return grid, nil
}

// candidateEdges lists horizontal edges row by row, then vertical edges
// column by column. Only edges with both rooms inside the grid are listed.
func candidateEdges(cols, rows int) []edge {
	edges := make([]edge, 0, cols*rows)
	for r := 0; r < rows; r += 2 {
		for c := 0; c+2 < cols; c += 2 {
			edges = append(edges, edge{
				a: model.Coord{Col: c, Row: r},
				b: model.Coord{Col: c + 2, Row: r},
			})
		}
	}
	for c := 0; c < cols; c += 2 {
		for r := 0; r+2 < rows; r += 2 {
			edges = append(edges, edge{
				a: model.Coord{Col: c, Row: r},
				b: model.Coord{Col: c, Row: r + 2},
			})
		}
	}
	return edges
}
