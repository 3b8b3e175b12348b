package actor

import (
	"fmt"
	"strings"

	"github.com/zucenko/mazechase/model"
)

// Quarry is what a ghost hunts. *Player satisfies it.
type Quarry interface {
	Position() model.Coord
	Heading() model.Dir
}

// Targeter picks the point a ghost steers toward at a junction. The point may
// lie outside the grid, it is only a distance reference.
type Targeter interface {
	Target(q Quarry) model.Coord
}

// Rand is the randomness strategies jitter with. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Strategy names the closed set of targeting behaviours.
type Strategy int

const (
	StrategyChase Strategy = iota
	StrategyAmbush
	StrategyTrail
	StrategyWander
)

func (s Strategy) Name() string {
	switch s {
	case StrategyChase:
		return "chase"
	case StrategyAmbush:
		return "ambush"
	case StrategyTrail:
		return "trail"
	case StrategyWander:
		return "wander"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chase":
		return StrategyChase, nil
	case "ambush":
		return StrategyAmbush, nil
	case "trail":
		return StrategyTrail, nil
	case "wander":
		return StrategyWander, nil
	default:
		return StrategyChase, fmt.Errorf("unknown strategy %q", s)
	}
}

// Aim holds the tunable distances of the strategies, in cells.
type Aim struct {
	AmbushLead   int
	TrailLag     int
	Jitter       int
	WanderJitter int
}

var DefaultAim = Aim{
	AmbushLead:   8,
	TrailLag:     4,
	Jitter:       5,
	WanderJitter: 15,
}

func NewTargeter(s Strategy, aim Aim, rng Rand) (Targeter, error) {
	switch s {
	case StrategyChase:
		return Chase{}, nil
	case StrategyAmbush:
		return Ambush{Lead: aim.AmbushLead, Jitter: aim.Jitter, Rand: rng}, nil
	case StrategyTrail:
		return Trail{Lag: aim.TrailLag, Jitter: aim.Jitter, Rand: rng}, nil
	case StrategyWander:
		return Wander{Jitter: aim.WanderJitter, Rand: rng}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %d", s)
	}
}

// Chase aims straight at the quarry.
type Chase struct{}

func (Chase) Target(q Quarry) model.Coord {
	return q.Position()
}

// Ambush aims Lead cells ahead of the quarry, give or take Jitter.
type Ambush struct {
	Lead   int
	Jitter int
	Rand   Rand
}

func (a Ambush) Target(q Quarry) model.Coord {
	return project(q, a.Lead, a.Jitter, a.Rand)
}

// Trail aims Lag cells behind the quarry, give or take Jitter.
type Trail struct {
	Lag    int
	Jitter int
	Rand   Rand
}

func (t Trail) Target(q Quarry) model.Coord {
	return project(q, -t.Lag, t.Jitter, t.Rand)
}

// Wander aims anywhere within Jitter cells of the quarry.
type Wander struct {
	Jitter int
	Rand   Rand
}

func (w Wander) Target(q Quarry) model.Coord {
	return project(q, 0, w.Jitter, w.Rand)
}

func project(q Quarry, reach, jitter int, rng Rand) model.Coord {
	pos, heading := q.Position(), q.Heading()
	return model.Coord{
		Col: pos.Col + reach*heading.Col + jiggle(jitter, rng),
		Row: pos.Row + reach*heading.Row + jiggle(jitter, rng),
	}
}

// jiggle draws uniformly from [-j, j].
func jiggle(j int, rng Rand) int {
	if j <= 0 || rng == nil {
		return 0
	}
	return rng.Intn(2*j+1) - j
}
