/*
Package actor holds everything that moves through the maze.

A Mover is always inside exactly one cell. A movement cycle spans a fixed
number of frames: on the first frame the mover is Aligned and its logical
cell may change in one step, for the remaining frames it is Moving and only
its drawn position slides from the previous cell toward the current one.
Nothing on the drawing side is ever read back into the logical state.
*/
package actor

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/mazechase/model"
)

// Terrain answers whether a cell can be entered. *model.Grid satisfies it.
type Terrain interface {
	Passable(c model.Coord) bool
}

type Phase int

const (
	Aligned Phase = iota + 1
	Moving
)

func (p Phase) Name() string {
	switch p {
	case Aligned:
		return "ALIGNED"
	case Moving:
		return "MOVING"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

type Mover struct {
	Pos      model.Coord
	Movement model.Dir
	Spawn    model.Coord

	terrain Terrain
	frames  int
	frame   int
}

// NewMover places a mover on spawn. frames is the length of one movement
// cycle and must be positive.
func NewMover(terrain Terrain, spawn model.Coord, frames int) Mover {
	if frames < 1 {
		frames = 1
	}
	return Mover{
		Pos:     spawn,
		Spawn:   spawn,
		terrain: terrain,
		frames:  frames,
	}
}

func (m *Mover) Position() model.Coord { return m.Pos }

func (m *Mover) Heading() model.Dir { return m.Movement }

// ValidMove reports whether the cell one step in direction d is passable.
func (m *Mover) ValidMove(d model.Dir) bool {
	return m.terrain.Passable(m.Pos.Add(d))
}

// Turn commits to d when it is a valid move and keeps the old commitment
// otherwise.
func (m *Mover) Turn(d model.Dir) {
	if m.ValidMove(d) {
		m.Movement = d
	}
}

// Advance relocates the mover one cell along its commitment, or stops it
// when that cell is blocked.
func (m *Mover) Advance() {
	if m.ValidMove(m.Movement) {
		m.Pos = m.Pos.Add(m.Movement)
	} else {
		m.Movement = model.Still
	}
}

// Respawn puts the mover back on its spawn cell, standing still.
func (m *Mover) Respawn() {
	m.Pos = m.Spawn
	m.Movement = model.Still
}

// Tick moves to the next frame of the cycle and reports whether the mover
// is aligned again.
func (m *Mover) Tick() bool {
	m.frame = (m.frame + 1) % m.frames
	return m.frame == 0
}

func (m *Mover) Phase() Phase {
	if m.frame == 0 {
		return Aligned
	}
	return Moving
}

func (m *Mover) Frame() int { return m.frame }

func (m *Mover) Frames() int { return m.frames }

// Offset is where the mover is drawn relative to its logical cell, in cells.
// It goes linearly from one full cell behind the commitment at the start of
// a cycle to zero at the end of it.
func (m *Mover) Offset() (dx, dy float32) {
	if m.Movement.IsStill() {
		return 0, 0
	}
	tween := gween.New(-1, 0, float32(m.frames), ease.Linear)
	behind, _ := tween.Update(float32(m.frame))
	return behind * float32(m.Movement.Col), behind * float32(m.Movement.Row)
}

// Actor is the renderer view of the mover.
func (m *Mover) Actor() model.Actor {
	dx, dy := m.Offset()
	return model.Actor{
		Col:     m.Pos.Col,
		Row:     m.Pos.Row,
		DCol:    m.Movement.Col,
		DRow:    m.Movement.Row,
		OffsetX: dx,
		OffsetY: dy,
	}
}
