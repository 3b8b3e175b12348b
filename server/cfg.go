package server

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

// newSession builds the grid and the game a request asks for. Sessions
// never share a random source.
func (s *GameServer) newSession(req GameRequest) (*GameSession, error) {
	rng := s.Config.Rand(req.Seed)
	grid, err := maze.Choose(req.Choice, s.Config.MazeConfig(), rng, s.Config.MazeFile)
	if err != nil {
		return nil, err
	}
	g, err := game.New(s.Config.GameConfig(), grid, rng)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	g.SetLogger(log.WithField("session", id))
	return &GameSession{
		Id:             id,
		State:          GS_NEW,
		Game:           g,
		Grid:           grid,
		MessagesToSend: make(chan model.ServerMessage, 32),
		intents:        make(chan model.Intent, 16),
		failed:         make(chan struct{}),
	}, nil
}

// MakeGameSetupMessage describes the maze and the starting state.
func (gs *GameSession) MakeGameSetupMessage() model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{
			SessionId: gs.Id,
			Cols:      gs.Grid.Cols,
			Rows:      gs.Grid.Rows,
			Layout:    gs.Grid.String(),
			Lives:     gs.Game.Player().Lives,
			Dots:      gs.Game.Board().Total(),
		}},
	}
}
