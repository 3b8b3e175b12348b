package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/mazechase/model"
)

var keyIntents = []struct {
	key    ebiten.Key
	intent model.Intent
}{
	{ebiten.KeyUp, model.IntentUp},
	{ebiten.KeyW, model.IntentUp},
	{ebiten.KeyDown, model.IntentDown},
	{ebiten.KeyS, model.IntentDown},
	{ebiten.KeyLeft, model.IntentLeft},
	{ebiten.KeyA, model.IntentLeft},
	{ebiten.KeyRight, model.IntentRight},
	{ebiten.KeyD, model.IntentRight},
	{ebiten.KeyEscape, model.IntentQuit},
	{ebiten.KeyQ, model.IntentQuit},
	{ebiten.KeyEnter, model.IntentConfirm},
	{ebiten.KeySpace, model.IntentConfirm},
}

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one drag. A drag longer than half a cell is a swipe.
type Stroke struct {
	source StrokeSource

	initX int
	initY int

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) PositionDiff() (int, int) {
	return s.currentX - s.initX, s.currentY - s.initY
}

// Swipe is the intent of the drag so far, IntentNone while it is too short.
// A tap is a confirm.
func (s *Stroke) Swipe() model.Intent {
	dx, dy := s.PositionDiff()
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx <= size/2 && ady <= size/2:
		if s.released {
			return model.IntentConfirm
		}
		return model.IntentNone
	case adx >= ady && dx > 0:
		return model.IntentRight
	case adx >= ady:
		return model.IntentLeft
	case dy > 0:
		return model.IntentDown
	default:
		return model.IntentUp
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// intents collects what the player asked for since the last update.
func (g *Game) intents() []model.Intent {
	var out []model.Intent
	for _, k := range keyIntents {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, k.intent)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		s.Update()
		intent := s.Swipe()
		if intent != model.IntentNone && intent != model.IntentConfirm {
			// a swipe counts as soon as it is long enough
			s.released = true
		}
		if s.IsReleased() {
			if intent != model.IntentNone {
				out = append(out, intent)
			}
			delete(g.strokes, s)
		}
	}
	return out
}
