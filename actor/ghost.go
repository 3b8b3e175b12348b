package actor

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/model"
)

type Player struct {
	Mover
	Points int
	Lives  int
}

func NewPlayer(terrain Terrain, spawn model.Coord, frames, lives int) *Player {
	return &Player{Mover: NewMover(terrain, spawn, frames), Lives: lives}
}

// Ghost chases the player. It owns one targeting strategy for its lifetime.
type Ghost struct {
	Mover
	Target Targeter
}

func NewGhost(terrain Terrain, spawn model.Coord, frames int, target Targeter) *Ghost {
	if target == nil {
		target = Chase{}
	}
	return &Ghost{Mover: NewMover(terrain, spawn, frames), Target: target}
}

// Plan picks the direction to turn toward at the start of the next cycle.
// With a single exit the ghost takes it, even backwards. With two exits it
// keeps going without reversing. At junctions it prefers the exit closest to
// its target, ties going to enumeration order, and still never reverses.
func (g *Ghost) Plan(quarry Quarry) model.Dir {
	moves := make([]model.Dir, 0, len(model.Directions))
	for _, d := range model.Directions {
		if g.ValidMove(d) {
			moves = append(moves, d)
		}
	}
	backtrack := g.Movement.Neg()

	switch dof := len(moves); {
	case dof == 0:
		log.WithFields(log.Fields{
			"pos":      g.Pos,
			"movement": g.Movement,
		}).Warn("ghost boxed in, maze is not connected")
		return model.Still
	case dof == 1:
		return moves[0]
	case dof >= 3:
		target := g.Target.Target(quarry)
		sortByDistance(moves, g.Pos, target)
	}

	for _, d := range moves {
		if d != backtrack {
			return d
		}
	}
	return moves[0]
}

func sortByDistance(moves []model.Dir, pos, target model.Coord) {
	sort.SliceStable(moves, func(i, j int) bool {
		return pos.Add(moves[i]).DistSq(target) < pos.Add(moves[j]).DistSq(target)
	})
}
