package game

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/actor"
	"github.com/zucenko/mazechase/model"
)

var (
	ErrInvalidFrames = errors.New("frames per cycle must be positive")
	ErrInvalidLives  = errors.New("lives must be positive")
	ErrNoGhosts      = errors.New("at least one ghost is required")
)

type Config struct {
	PlayerFrames int
	GhostFrames  int
	Lives        int
	Strategies   []actor.Strategy
	Aim          actor.Aim
	// CaughtPause is how long presentation freezes after a catch. It has no
	// effect on the simulation.
	CaughtPause time.Duration
	TickRate    int
}

var DefaultConfig = Config{
	PlayerFrames: 20,
	GhostFrames:  25,
	Lives:        3,
	Strategies: []actor.Strategy{
		actor.StrategyChase,
		actor.StrategyAmbush,
		actor.StrategyTrail,
		actor.StrategyWander,
		actor.StrategyWander,
	},
	Aim:         actor.DefaultAim,
	CaughtPause: time.Second,
	TickRate:    100,
}

type State int

const (
	Playing State = iota + 1
	Won
	Lost
	Quit
)

func (s State) Name() string {
	switch s {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	case Quit:
		return "QUIT"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type EventKind int

const (
	EventDot EventKind = iota + 1
	EventCaught
	EventWon
	EventLost
)

type Event struct {
	Kind EventKind
	Pos  model.Coord
}

// Game owns the board and every mover. It is driven by one caller, one
// Tick at a time.
type Game struct {
	cfg    Config
	board  *model.Board
	player *actor.Player
	ghosts []*actor.Ghost
	next   model.Dir
	state  State
	tick   int64
	eaten  []model.Coord
	caught bool
	log    *log.Entry
}

func New(cfg Config, grid *model.Grid, rng actor.Rand) (*Game, error) {
	if cfg.PlayerFrames < 1 || cfg.GhostFrames < 1 {
		return nil, fmt.Errorf("%w: player %d, ghost %d", ErrInvalidFrames, cfg.PlayerFrames, cfg.GhostFrames)
	}
	if cfg.Lives < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLives, cfg.Lives)
	}
	if len(cfg.Strategies) == 0 {
		return nil, ErrNoGhosts
	}

	g := &Game{
		cfg:    cfg,
		board:  model.NewBoard(grid),
		player: actor.NewPlayer(grid, grid.PlayerSpawn(), cfg.PlayerFrames, cfg.Lives),
		state:  Playing,
		log:    log.NewEntry(log.StandardLogger()),
	}
	for _, s := range cfg.Strategies {
		target, err := actor.NewTargeter(s, cfg.Aim, rng)
		if err != nil {
			return nil, err
		}
		g.ghosts = append(g.ghosts, actor.NewGhost(grid, grid.GhostSpawn(), cfg.GhostFrames, target))
	}

	// ghosts leave the spawn right away so they don't start stacked
	for _, ghost := range g.ghosts {
		ghost.Turn(ghost.Plan(g.player))
		ghost.Advance()
	}
	return g, nil
}

func (g *Game) SetLogger(entry *log.Entry) {
	g.log = entry
}

// Steer buffers the latest direction asked for. It is applied the next time
// the player is aligned. Quit ends the game.
func (g *Game) Steer(intent model.Intent) {
	if intent == model.IntentQuit {
		if g.state == Playing {
			g.state = Quit
		}
		return
	}
	if d := intent.Dir(); !d.IsStill() {
		g.next = d
	}
}

// Tick advances the simulation by one frame.
func (g *Game) Tick() []Event {
	if g.state != Playing {
		return nil
	}
	g.tick++
	g.eaten = g.eaten[:0]
	g.caught = false

	var events []Event
	playerAligned := g.player.Tick()
	// ghosts share GhostFrames, so the first one's cycle is everyone's
	ghostsAligned := false
	for i, ghost := range g.ghosts {
		if aligned := ghost.Tick(); i == 0 {
			ghostsAligned = aligned
		}
	}

	if playerAligned {
		pos := g.player.Pos
		if g.board.Eat(pos) {
			g.player.Points++
			g.eaten = append(g.eaten, pos)
			events = append(events, Event{Kind: EventDot, Pos: pos})
		}
		if g.collides() {
			events = append(events, g.catch()...)
			if g.state != Playing {
				return events
			}
		}
		if g.board.Dots() == 0 {
			g.state = Won
			g.log.WithFields(log.Fields{"tick": g.tick, "points": g.player.Points}).Info("all dots eaten")
			return append(events, Event{Kind: EventWon, Pos: g.player.Pos})
		}
		g.player.Turn(g.next)
		g.player.Advance()
	}

	if ghostsAligned {
		if g.collides() {
			events = append(events, g.catch()...)
			if g.state != Playing {
				return events
			}
		}
		for _, ghost := range g.ghosts {
			ghost.Turn(ghost.Plan(g.player))
			ghost.Advance()
		}
	}
	return events
}

func (g *Game) collides() bool {
	for _, ghost := range g.ghosts {
		if ghost.Pos == g.player.Pos {
			return true
		}
	}
	return false
}

// catch costs a life and sends everybody back to their spawn, standing.
func (g *Game) catch() []Event {
	pos := g.player.Pos
	g.player.Lives--
	g.player.Respawn()
	for _, ghost := range g.ghosts {
		ghost.Respawn()
	}
	g.caught = true

	g.log.WithFields(log.Fields{
		"tick":  g.tick,
		"pos":   pos,
		"lives": g.player.Lives,
	}).Info("player caught")

	events := []Event{{Kind: EventCaught, Pos: pos}}
	if g.player.Lives <= 0 {
		g.state = Lost
		events = append(events, Event{Kind: EventLost, Pos: pos})
	}
	return events
}

func (g *Game) State() State { return g.state }

func (g *Game) Over() bool { return g.state != Playing }

func (g *Game) Board() *model.Board { return g.board }

func (g *Game) Player() *actor.Player { return g.player }

func (g *Game) Ghosts() []*actor.Ghost { return g.ghosts }

func (g *Game) Config() Config { return g.cfg }

// Snapshot is the renderer view of the last tick.
func (g *Game) Snapshot() model.Frame {
	ghosts := make([]model.Actor, 0, len(g.ghosts))
	for _, ghost := range g.ghosts {
		ghosts = append(ghosts, ghost.Actor())
	}
	eaten := make([]model.Coord, len(g.eaten))
	copy(eaten, g.eaten)
	return model.Frame{
		Tick:     g.tick,
		Player:   g.player.Actor(),
		Ghosts:   ghosts,
		Points:   g.player.Points,
		Lives:    g.player.Lives,
		DotsLeft: g.board.Dots(),
		Eaten:    eaten,
		Caught:   g.caught,
		State:    g.state.Name(),
	}
}

func (g *Game) Result() model.Result {
	return model.Result{
		Won:    g.state == Won,
		Points: g.player.Points,
		Total:  g.board.Total(),
	}
}
