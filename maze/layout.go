package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zucenko/mazechase/model"
)

var (
	ErrLayout       = errors.New("malformed layout")
	ErrDisconnected = errors.New("maze ways are not connected")
	ErrSpawnBlocked = errors.New("spawn cell is a wall")
)

// DefaultLayout is the hand made preset maze.
const DefaultLayout = `
...................
.#####.##.##.##.##.
.#####.##.##.##.##.
...................
.##.##.##.##.##.##.
.##.##.##.##.##.##.
....##.............
.##.##.##.##.##.##.
.##.##.##.##.##.##.
...................
.##.##.#####.##.##.
.##.##.#####.##.##.
.............##....
.##.##.##.##.##.##.
.##.##.##.##.##.##.
...................
.##.##.##.##.##.##.
.##.##.##.##.##.##.
...................
`

// LoadLayout reads a layout file and validates it.
func LoadLayout(path string) (*model.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := ParseLayout(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseLayout reads one row per line, '#' for a wall and '.' or ' ' for a
// way. Blank lines around the maze are skipped. The grid must be
// rectangular and satisfy Validate.
func ParseLayout(reader io.Reader) (*model.Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	rows := make([][]bool, 0)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(s) == "" {
			continue
		}
		row := make([]bool, 0, len(s))
		for col, char := range s {
			switch char {
			case model.WayRune, ' ':
				row = append(row, true)
			case model.WallRune:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrLayout, line, col, char)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrLayout, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrLayout)
	}

	g := &model.Grid{Cols: len(rows[0]), Rows: len(rows), Cells: rows}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that both spawn cells are open and every way is reachable
// from every other way.
func Validate(g *model.Grid) error {
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, g.Cols, g.Rows)
	}
	for _, spawn := range []model.Coord{g.PlayerSpawn(), g.GhostSpawn()} {
		if !g.Passable(spawn) {
			return fmt.Errorf("%w: %v", ErrSpawnBlocked, spawn)
		}
	}

	reached := Reachable(g, g.PlayerSpawn())
	if ways := g.Ways(); reached != ways {
		return fmt.Errorf("%w: %d of %d ways reachable from %v", ErrDisconnected, reached, ways, g.PlayerSpawn())
	}
	return nil
}

// Reachable counts the ways reachable from start with a flood fill.
func Reachable(g *model.Grid, start model.Coord) int {
	if !g.Passable(start) {
		return 0
	}
	visited := make([]bool, g.Cols*g.Rows)
	visited[start.Index(g.Cols)] = true
	stack := []model.Coord{start}
	n := 0
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, d := range model.Directions {
			next := cell.Add(d)
			if !g.Passable(next) || visited[next.Index(g.Cols)] {
				continue
			}
			visited[next.Index(g.Cols)] = true
			stack = append(stack, next)
		}
	}
	return n
}
