package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
	"github.com/zucenko/mazechase/theme"
	"github.com/zucenko/mazechase/tween"
	"golang.org/x/image/font"
)

// presetCells is the size of the preset maze, used before any maze exists.
const presetCells = 19

var errQuit = errors.New("player quit")

type GameState int

const (
	MENU GameState = iota + 1
	PLAYING
	CAUGHT
	GAME_OVER
)

func (s GameState) Name() string {
	switch s {
	case MENU:
		return "MENU"
	case PLAYING:
		return "PLAYING"
	case CAUGHT:
		return "CAUGHT"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State   GameState
	Config  config.Config
	Choice  maze.Choice
	Sim     *game.Game
	Frame   model.Frame
	Result  model.Result
	Tweens  tween.Set
	Font    font.Face
	strokes map[*Stroke]struct{}

	overlay   float32
	blink     float32
	shown     float32
	wobble    int
	wobbleDir int
}

func NewGame(cfg config.Config) (*Game, error) {
	face, err := theme.LoadFont(hudSize / 2)
	if err != nil {
		return nil, err
	}
	return &Game{
		State:     MENU,
		Config:    cfg,
		Choice:    cfg.Maze,
		Tweens:    tween.Set{},
		Font:      face,
		strokes:   map[*Stroke]struct{}{},
		wobbleDir: 1,
	}, nil
}

// start builds a fresh maze and game for the chosen maze kind.
func (g *Game) start() error {
	rng := g.Config.Rand(0)
	grid, err := maze.Choose(g.Choice, g.Config.MazeConfig(), rng, g.Config.MazeFile)
	if err != nil {
		return err
	}
	sim, err := game.New(g.Config.GameConfig(), grid, rng)
	if err != nil {
		return err
	}
	g.Sim = sim
	g.Frame = sim.Snapshot()
	g.State = PLAYING
	g.overlay, g.blink = 0, 0
	ebiten.SetScreenSize(grid.Cols*size, grid.Rows*size+hudSize)
	log.WithFields(log.Fields{"choice": g.Choice.Name(), "dots": sim.Board().Total()}).Info("game started")
	return nil
}

func (g *Game) update(screen *ebiten.Image) error {
	g.Tweens.Update(1 / float32(ebiten.MaxTPS()))

	intents := g.intents()
	switch g.State {
	case MENU:
		for _, intent := range intents {
			switch intent {
			case model.IntentUp, model.IntentDown:
				if g.Choice == maze.Preset {
					g.Choice = maze.Random
				} else {
					g.Choice = maze.Preset
				}
			case model.IntentConfirm:
				if err := g.start(); err != nil {
					return err
				}
			case model.IntentQuit:
				return errQuit
			}
		}
	case PLAYING:
		g.play(intents)
	case CAUGHT:
		// frozen until the fade is over
	case GAME_OVER:
		for _, intent := range intents {
			switch intent {
			case model.IntentConfirm:
				g.State = MENU
			case model.IntentQuit:
				return errQuit
			}
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

func (g *Game) play(intents []model.Intent) {
	for _, intent := range intents {
		g.Sim.Steer(intent)
	}
	if g.Sim.State() == game.Quit {
		g.State = MENU
		return
	}

	events := g.Sim.Tick()
	g.Frame = g.Sim.Snapshot()
	g.animate()
	for _, e := range events {
		if e.Kind == game.EventCaught {
			g.caught()
		}
	}
	if g.Sim.Over() {
		g.over()
	}
}

// caught freezes the screen while a red flash fades out, then the lives
// counter blinks while play goes on.
func (g *Game) caught() {
	pause := g.Config.CaughtPause.Seconds()
	if pause <= 0 {
		return
	}
	g.State = CAUGHT
	fade := g.Tweens.Add(gween.New(1, 0, float32(pause), ease.OutQuad),
		&tween.Action{OnChange: func(v float32) { g.overlay = v }})
	fade.AddOnFinish(func() {
		g.overlay = 0
		if g.State == CAUGHT {
			g.State = PLAYING
		}
	})
	blink := fade.Next(gween.New(0, 3, float32(pause)/2, ease.Linear))
	blink.OnChange = func(v float32) { g.blink = v }
	blink.AddOnFinish(func() { g.blink = 0 })
}

// over counts the points up on the end screen.
func (g *Game) over() {
	g.Result = g.Sim.Result()
	g.State = GAME_OVER
	g.shown = 0
	g.Tweens.Add(gween.New(0, float32(g.Result.Points), 1, ease.OutCubic),
		&tween.Action{OnChange: func(v float32) { g.shown = v }})
}

// animate swings the ghost skirts back and forth, it never touches the game.
func (g *Game) animate() {
	if g.Frame.Tick%8 != 0 {
		return
	}
	g.wobble += g.wobbleDir
	if g.wobble <= 0 || g.wobble >= 3 {
		g.wobbleDir = -g.wobbleDir
	}
}

func (g *Game) draw(screen *ebiten.Image) error {
	if err := screen.Fill(theme.COLOR_NONE.Color(1)); err != nil {
		return err
	}
	switch g.State {
	case MENU:
		g.drawMenu(screen)
	case PLAYING, CAUGHT:
		g.drawBoard(screen)
	case GAME_OVER:
		g.drawOver(screen)
	}
	return nil
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	text.Draw(screen, "MAZE CHASE", g.Font, size, 2*size, theme.COLOR_PLAYER.Color(1))
	for i, choice := range []maze.Choice{maze.Preset, maze.Random} {
		clr := theme.COLOR_TEXT.Color(1)
		label := "  " + choice.Name() + " maze"
		if choice == g.Choice {
			clr = theme.COLOR_PLAYER.Color(1)
			label = "> " + choice.Name() + " maze"
		}
		text.Draw(screen, label, g.Font, size, (4+2*i)*size, clr)
	}
	ebitenutil.DebugPrintAt(screen, "arrows to pick, enter to play, esc to quit", size, 9*size)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	board := g.Sim.Board()
	for r, row := range board.Matrix {
		for c, cell := range row {
			x, y := float64(c*size), float64(r*size)
			switch {
			case cell.Wall:
				ebitenutil.DrawRect(screen, x, y, size, size, theme.COLOR_WALL.Color(1))
			case cell.Dot:
				ebitenutil.DrawRect(screen, x+size/2-2, y+size/2-2, 4, 4, theme.COLOR_DOT.Color(1))
			}
		}
	}

	px, py := actorXY(g.Frame.Player)
	ebitenutil.DrawRect(screen, px+3, py+3, size-6, size-6, theme.COLOR_PLAYER.Color(1))
	for i, ghost := range g.Frame.Ghosts {
		g.drawGhost(screen, ghost, theme.GhostColor(i))
	}

	width, height := float64(board.Grid.Cols*size), float64(board.Grid.Rows*size)
	if g.overlay > 0 {
		ebitenutil.DrawRect(screen, 0, 0, width, height, theme.GhostColor(0).Color(float64(g.overlay)*.5))
	}

	baseline := int(height) + hudSize - 12
	text.Draw(screen, fmt.Sprintf("%05d", g.Frame.Points), g.Font, 5, baseline, theme.COLOR_TEXT.Color(1))
	livesAlpha := 1.0
	if g.blink > 0 && int(g.blink*2)%2 == 1 {
		livesAlpha = .2
	}
	text.Draw(screen, fmt.Sprintf("lives %d", g.Frame.Lives), g.Font, 5+4*size, baseline, theme.COLOR_TEXT.Color(livesAlpha))
	ebitenutil.DebugPrintAt(screen, g.State.Name(), int(width)-80, int(height)+4)
}

func (g *Game) drawGhost(screen *ebiten.Image, a model.Actor, c theme.GameColor) {
	x, y := actorXY(a)
	ebitenutil.DrawRect(screen, x+3, y+3, size-6, size-10, c.Color(1))
	// skirt, three teeth shifting with the wobble
	for k := 0; k < 3; k++ {
		tx := x + 3 + float64(k*6+g.wobble%2*3)
		ebitenutil.DrawRect(screen, tx, y+size-7, 3, 4, c.Color(1))
	}
}

func (g *Game) drawOver(screen *ebiten.Image) {
	title, clr := "GAME OVER", theme.GhostColor(0).Color(1)
	if g.Result.Won {
		title, clr = "YOU WON", theme.COLOR_PLAYER.Color(1)
	}
	text.Draw(screen, title, g.Font, size, 2*size, clr)
	text.Draw(screen, fmt.Sprintf("%d / %d", int(g.shown+.5), g.Result.Total), g.Font, size, 4*size, theme.COLOR_TEXT.Color(1))
	ebitenutil.DebugPrintAt(screen, "enter to play again, esc to quit", size, 6*size)
}

// actorXY is the top left pixel of an actor, interpolation included.
func actorXY(a model.Actor) (float64, float64) {
	return (float64(a.Col) + float64(a.OffsetX)) * size,
		(float64(a.Row) + float64(a.OffsetY)) * size
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	theGame, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetMaxTPS(cfg.TickRate)
	err = ebiten.Run(theGame.update, presetCells*size, presetCells*size+hudSize, 1, "Maze Chase")
	if err != nil && err != errQuit {
		log.Fatal(err)
	}
}
