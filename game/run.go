package game

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/model"
)

// Input delivers player intents. Closing the channel quits the game.
type Input interface {
	Intents() <-chan model.Intent
}

// Renderer shows a frame. An error stops the game.
type Renderer interface {
	Render(board *model.Board, f model.Frame) error
}

// Clock paces the loop.
type Clock interface {
	Tick(ctx context.Context) error
	Pause(ctx context.Context, d time.Duration) error
}

// Run drives g until it is over, the input goes away or ctx is done. The
// input is drained between ticks so the latest intent wins.
func Run(ctx context.Context, g *Game, in Input, out Renderer, clock Clock) (model.Result, error) {
	intents := in.Intents()
	if err := out.Render(g.Board(), g.Snapshot()); err != nil {
		return g.Result(), err
	}
	for {
		if !drain(g, intents) {
			g.Steer(model.IntentQuit)
		}
		if g.Over() {
			break
		}

		events := g.Tick()
		if err := out.Render(g.Board(), g.Snapshot()); err != nil {
			return g.Result(), err
		}
		if caught(events) && g.Config().CaughtPause > 0 {
			if err := clock.Pause(ctx, g.Config().CaughtPause); err != nil {
				return g.Result(), err
			}
		}
		if g.Over() {
			break
		}
		if err := clock.Tick(ctx); err != nil {
			return g.Result(), err
		}
	}

	res := g.Result()
	g.log.WithFields(log.Fields{
		"state":  g.State().Name(),
		"points": res.Points,
		"total":  res.Total,
	}).Info("game over")
	return res, nil
}

// drain feeds every pending intent to g. It reports false once the channel
// is closed.
func drain(g *Game, intents <-chan model.Intent) bool {
	for {
		select {
		case intent, ok := <-intents:
			if !ok {
				return false
			}
			g.Steer(intent)
		default:
			return true
		}
	}
}

func caught(events []Event) bool {
	for _, e := range events {
		if e.Kind == EventCaught {
			return true
		}
	}
	return false
}

// TickerClock paces the loop at a fixed rate of ticks per second.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(rate int) *TickerClock {
	if rate < 1 {
		rate = 1
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

func (c *TickerClock) Tick(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

func (c *TickerClock) Pause(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
