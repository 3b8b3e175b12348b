// Package config turns the environment, optionally seeded from a .env file,
// into the explicit configuration the generator and the game are built from.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/actor"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/maze"
)

type Config struct {
	Port     int
	LogLevel log.Level

	Maze     maze.Choice
	MazeFile string
	Cols     int
	Rows     int
	Seed     int64
	LoopOdds int

	TickRate     int
	PlayerFrames int
	GhostFrames  int
	Lives        int
	Ghosts       []actor.Strategy
	Aim          actor.Aim
	CaughtPause  time.Duration
}

// Lookup finds the value of a variable, like os.LookupEnv.
type Lookup func(key string) (string, bool)

// Load reads the given env files, ".env" when none are given, and then the
// process environment, which wins over the files. Missing files are fine.
func Load(files ...string) (Config, error) {
	vals, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file: %w", err)
		}
		log.WithError(err).Debug("no env file")
		vals = map[string]string{}
	}
	return Parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	})
}

// Parse builds a Config from lookup, falling back to defaults for anything
// not set.
func Parse(lookup Lookup) (Config, error) {
	p := parser{lookup: lookup}
	c := Config{
		Port:         p.int("PORT", 8080),
		LogLevel:     p.level("LOG_LEVEL", log.InfoLevel),
		Maze:         p.choice("MAZE", maze.Random),
		MazeFile:     p.string("MAZE_FILE", ""),
		Cols:         p.int("COLS", 20),
		Rows:         p.int("ROWS", 20),
		Seed:         int64(p.int("SEED", 0)),
		LoopOdds:     p.int("LOOP_ODDS", maze.DefaultLoopOdds),
		TickRate:     p.int("TICK_RATE", game.DefaultConfig.TickRate),
		PlayerFrames: p.int("PLAYER_FRAMES", game.DefaultConfig.PlayerFrames),
		GhostFrames:  p.int("GHOST_FRAMES", game.DefaultConfig.GhostFrames),
		Lives:        p.int("LIVES", game.DefaultConfig.Lives),
		Ghosts:       p.strategies("GHOSTS", game.DefaultConfig.Strategies),
		Aim: actor.Aim{
			AmbushLead:   p.int("AMBUSH_LEAD", actor.DefaultAim.AmbushLead),
			TrailLag:     p.int("TRAIL_LAG", actor.DefaultAim.TrailLag),
			Jitter:       p.int("AIM_JITTER", actor.DefaultAim.Jitter),
			WanderJitter: p.int("WANDER_JITTER", actor.DefaultAim.WanderJitter),
		},
		CaughtPause: p.duration("CAUGHT_PAUSE", game.DefaultConfig.CaughtPause),
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return c, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) MazeConfig() maze.Config {
	return maze.Config{Cols: c.Cols, Rows: c.Rows, LoopOdds: c.LoopOdds}
}

func (c Config) GameConfig() game.Config {
	strategies := make([]actor.Strategy, len(c.Ghosts))
	copy(strategies, c.Ghosts)
	return game.Config{
		PlayerFrames: c.PlayerFrames,
		GhostFrames:  c.GhostFrames,
		Lives:        c.Lives,
		Strategies:   strategies,
		Aim:          c.Aim,
		CaughtPause:  c.CaughtPause,
		TickRate:     c.TickRate,
	}
}

// Rand returns a source seeded with seed, or with Seed when seed is zero. A
// zero Seed seeds from the clock.
func (c Config) Rand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// parser remembers the first bad variable so Parse reads like a literal.
type parser struct {
	lookup Lookup
	err    error
}

func (p *parser) raw(key string) (string, bool) {
	v, ok := p.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("config %s=%q: %w", key, value, err)
	}
}

func (p *parser) string(key, def string) string {
	if v, ok := p.raw(key); ok {
		return v
	}
	return def
}

func (p *parser) int(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *parser) level(key string, def log.Level) log.Level {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	l, err := log.ParseLevel(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return l
}

func (p *parser) choice(key string, def maze.Choice) maze.Choice {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	c, err := maze.ParseChoice(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return c
}

func (p *parser) strategies(key string, def []actor.Strategy) []actor.Strategy {
	v, ok := p.raw(key)
	if !ok {
		out := make([]actor.Strategy, len(def))
		copy(out, def)
		return out
	}
	var out []actor.Strategy
	for _, name := range strings.Split(v, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := actor.ParseStrategy(name)
		if err != nil {
			p.fail(key, v, err)
			return def
		}
		out = append(out, s)
	}
	return out
}
