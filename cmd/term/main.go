package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/maze"
)

func main() {
	remoteURL := flag.String("server", "", "play on a server, e.g. ws://localhost:8080/play?maze=random")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.LogLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalln(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalln(err)
	}
	defer screen.Fini()

	// the terminal belongs to the game now
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := newView(screen)
	go v.poll()

	if *remoteURL != "" {
		err = playRemote(ctx, v, *remoteURL)
	} else {
		err = playLocal(ctx, v, cfg)
	}
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

// playLocal runs menu, game and end screen until the player quits.
func playLocal(ctx context.Context, v *view, cfg config.Config) error {
	choice := cfg.Maze
	for {
		var ok bool
		if choice, ok = v.menu(ctx, choice); !ok {
			return nil
		}

		rng := cfg.Rand(0)
		grid, err := maze.Choose(choice, cfg.MazeConfig(), rng, cfg.MazeFile)
		if err != nil {
			return err
		}
		g, err := game.New(cfg.GameConfig(), grid, rng)
		if err != nil {
			return err
		}

		clock := game.NewTickerClock(cfg.TickRate)
		res, err := game.Run(ctx, g, v, v, clock)
		clock.Stop()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if g.State() == game.Quit {
			return nil
		}
		if !v.end(ctx, res) {
			return nil
		}
	}
}
