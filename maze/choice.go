package maze

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/model"
)

// Choice selects where a grid comes from.
type Choice int

const (
	Random Choice = iota
	Preset
)

func (c Choice) Name() string {
	switch c {
	case Random:
		return "random"
	case Preset:
		return "preset"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return Random, nil
	case "preset", "default":
		return Preset, nil
	default:
		return Random, fmt.Errorf("unknown maze choice %q", s)
	}
}

// Choose builds the grid for a new game. A preset comes from presetPath, or
// DefaultLayout when the path is empty. Either way the grid is validated.
func Choose(choice Choice, cfg Config, src Source, presetPath string) (*model.Grid, error) {
	var (
		g   *model.Grid
		err error
	)
	switch choice {
	case Preset:
		if presetPath != "" {
			g, err = LoadLayout(presetPath)
		} else {
			g, err = ParseLayout(strings.NewReader(DefaultLayout))
		}
	case Random:
		g, err = Generate(cfg, src)
		if err == nil {
			err = Validate(g)
		}
	default:
		err = fmt.Errorf("unknown maze choice %d", choice)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"choice": choice.Name(),
		"cols":   g.Cols,
		"rows":   g.Rows,
	}).Info("maze ready")
	return g, nil
}
