package server

import (
	"fmt"
	"time"

	"github.com/zucenko/mazechase/maze"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type SessionStats struct {
	InMessages  int
	OutMessages int
	Dropped     int
	Pings       int
	LastMessage time.Time
	LastPing    time.Time
}

type ResponseCode int

const (
	GAME_READY ResponseCode = iota
	GAME_NOT_FOUND
	GAME_INVALIDE
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case GAME_READY:
		return HTTP_SUCCESS
	case GAME_NOT_FOUND:
		return HTTP_NOT_FOUND
	case GAME_INVALIDE:
		return HTTP_BAD_REQUEST
	default:
		return HTTP_SERVER_ERR
	}
}

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_ERR:
		return "GS_ERR"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
	Err          error
}

// GameRequest asks the server loop for a fresh session. Seed zero falls
// back to the configured seed.
type GameRequest struct {
	Choice              maze.Choice
	Seed                int64
	GameContextAwaiting chan GameContextAwaiting
}
