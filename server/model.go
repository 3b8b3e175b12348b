package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/model"
)

type GameServer struct {
	Config       config.Config
	GameSessions map[string]*GameSession
	GameRequests chan GameRequest
	Ended        chan string
	Upgrader     *websocket.Upgrader
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession is one player connected to one game. The game itself runs on
// the goroutine that called Serve, the socket is pumped by two more.
type GameSession struct {
	Id    string
	State GameSessionState
	Game  *game.Game
	Grid  *model.Grid
	Conn  *websocket.Conn

	MessagesToSend chan model.ServerMessage
	intents        chan model.Intent
	pending        []model.Coord
	failed         chan struct{}
	failOnce       sync.Once
	mu             sync.Mutex

	DebugInMessages  int
	DebugOutMessages int
	DebugDropped     int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
