package main

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

// cellWidth is how many terminal columns one maze cell takes, so cells come
// out roughly square.
const cellWidth = 2

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorNavy)
	dotStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	ghostStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tcell.StyleDefault.Foreground(tcell.ColorAqua),
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// view draws on a terminal and turns its key presses into intents.
type view struct {
	screen  tcell.Screen
	intents chan model.Intent
}

func newView(screen tcell.Screen) *view {
	return &view{screen: screen, intents: make(chan model.Intent, 8)}
}

func (v *view) Intents() <-chan model.Intent {
	return v.intents
}

// poll forwards key presses until the screen is finalized.
func (v *view) poll() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if intent := keyIntent(ev); intent != model.IntentNone {
				select {
				case v.intents <- intent:
				default:
				}
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func keyIntent(ev *tcell.EventKey) model.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return model.IntentUp
	case tcell.KeyDown:
		return model.IntentDown
	case tcell.KeyLeft:
		return model.IntentLeft
	case tcell.KeyRight:
		return model.IntentRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return model.IntentQuit
	case tcell.KeyEnter:
		return model.IntentConfirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return model.IntentUp
		case 's', 'j':
			return model.IntentDown
		case 'a', 'h':
			return model.IntentLeft
		case 'd', 'l':
			return model.IntentRight
		case 'q':
			return model.IntentQuit
		case ' ':
			return model.IntentConfirm
		}
	}
	return model.IntentNone
}

func (v *view) Render(board *model.Board, f model.Frame) error {
	v.screen.Clear()
	for r, row := range board.Matrix {
		for c, cell := range row {
			x := c * cellWidth
			switch {
			case cell.Wall:
				for i := 0; i < cellWidth; i++ {
					v.screen.SetContent(x+i, r, ' ', nil, wallStyle)
				}
			case cell.Dot:
				v.screen.SetContent(x, r, '·', nil, dotStyle)
			}
		}
	}

	v.drawActor(f.Player, 'C', playerStyle)
	for i, ghost := range f.Ghosts {
		v.drawActor(ghost, 'M', ghostStyles[i%len(ghostStyles)])
	}

	hud := board.Grid.Rows + 1
	v.text(0, hud, fmt.Sprintf("points %d/%d  lives %d  %s", f.Points, board.Total(), f.Lives, f.State), hudStyle)
	if f.Caught {
		v.text(0, hud+1, "CAUGHT!", alertStyle)
	}
	v.screen.Show()
	return nil
}

// drawActor places an actor at its interpolated position, rounded to the
// nearest terminal cell.
func (v *view) drawActor(a model.Actor, glyph rune, style tcell.Style) {
	x := int(math.Round(float64((float32(a.Col) + a.OffsetX) * cellWidth)))
	y := int(math.Round(float64(float32(a.Row) + a.OffsetY)))
	v.screen.SetContent(x, y, glyph, nil, style)
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// menu lets the player pick the maze. It reports false when the player
// quits instead.
func (v *view) menu(ctx context.Context, selected maze.Choice) (maze.Choice, bool) {
	options := []maze.Choice{maze.Preset, maze.Random}
	for {
		v.screen.Clear()
		v.text(2, 1, "MAZE CHASE", alertStyle)
		for i, o := range options {
			style, marker := hudStyle, "  "
			if o == selected {
				style, marker = playerStyle, "> "
			}
			v.text(2, 3+i, marker+o.Name()+" maze", style)
		}
		v.text(2, 6, "arrows to pick, enter to play, q to quit", dotStyle)
		v.screen.Show()

		select {
		case <-ctx.Done():
			return selected, false
		case intent, ok := <-v.intents:
			if !ok {
				return selected, false
			}
			switch intent {
			case model.IntentUp, model.IntentDown:
				if selected == maze.Preset {
					selected = maze.Random
				} else {
					selected = maze.Preset
				}
			case model.IntentConfirm:
				return selected, true
			case model.IntentQuit:
				return selected, false
			}
		}
	}
}

// end shows the outcome and reports whether the player wants another game.
func (v *view) end(ctx context.Context, res model.Result) bool {
	v.screen.Clear()
	if res.Won {
		v.text(2, 1, "YOU WON", playerStyle)
	} else {
		v.text(2, 1, "GAME OVER", alertStyle)
	}
	v.text(2, 3, fmt.Sprintf("points %d/%d", res.Points, res.Total), hudStyle)
	v.text(2, 5, "enter to play again, q to quit", dotStyle)
	v.screen.Show()

	for {
		select {
		case <-ctx.Done():
			return false
		case intent, ok := <-v.intents:
			if !ok {
				return false
			}
			switch intent {
			case model.IntentConfirm:
				return true
			case model.IntentQuit:
				return false
			}
		}
	}
}
