package server

import (
	"context"
	"encoding/gob"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/game"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

var ErrConnectionLost = errors.New("connection lost")

func NewGameServer(cfg config.Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make(map[string]*GameSession),
		GameRequests: make(chan GameRequest),
		Ended:        make(chan string),
		Upgrader:     &websocket.Upgrader{},
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 2 * time.Second
	return func(w http.ResponseWriter, r *http.Request) {
		log.WithField("remote", r.RemoteAddr).Info("HandleHttpCall - connection received")

		q := r.URL.Query()
		choice := s.Config.Maze
		if v := q.Get("maze"); v != "" {
			c, err := maze.ParseChoice(v)
			if err != nil {
				http.Error(w, err.Error(), HTTP_BAD_REQUEST)
				return
			}
			choice = c
		}
		var seed int64
		if v := q.Get("seed"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				http.Error(w, "seed must be an integer", HTTP_BAD_REQUEST)
				return
			}
			seed = n
		}

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{Choice: choice, Seed: seed, GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				msg := "game not available"
				if gca.Err != nil {
					msg = gca.Err.Error()
				}
				http.Error(w, msg, gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		gs := gca.GameSession
		defer s.end(gs.Id, timeout)

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// the upgrader already answered the request
			log.WithError(err).Warn("HandleHttpCall websocket upgrade failed")
			return
		}
		defer con.Close()

		res, err := gs.Serve(r.Context(), con, s.Config.GameConfig().TickRate)
		stats := gs.Stats()
		entry := log.WithFields(log.Fields{
			"session": gs.Id,
			"won":     res.Won,
			"points":  res.Points,
			"total":   res.Total,
			"in":      stats.InMessages,
			"out":     stats.OutMessages,
			"dropped": stats.Dropped,
		})
		if err != nil {
			entry.WithError(err).Warn("game session failed")
			return
		}
		entry.Info("game session over")
	}
}

func (s *GameServer) end(id string, timeout time.Duration) {
	select {
	case s.Ended <- id:
	case <-time.After(timeout):
		log.WithField("session", id).Warn("GameServer.Ended TIMEOUTED")
	}
}

// Loop owns the session registry. It runs until ctx is done.
func (s *GameServer) Loop(ctx context.Context) {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case <-ctx.Done():
			log.Info("GameServer.Loop stopped")
			return
		case req := <-s.GameRequests:
			gs, err := s.newSession(req)
			if err != nil {
				log.WithError(err).Warn("cannot create game session")
				req.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALIDE, Err: err}
				continue
			}
			s.GameSessions[gs.Id] = gs
			log.WithFields(log.Fields{
				"session":  gs.Id,
				"choice":   req.Choice.Name(),
				"sessions": len(s.GameSessions),
			}).Info("game session created")
			req.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_READY, GameSession: gs}
		case id := <-s.Ended:
			delete(s.GameSessions, id)
			log.WithFields(log.Fields{
				"session":  id,
				"sessions": len(s.GameSessions),
			}).Info("game session removed")
		}
	}
}

// Serve plays the session's game over conn until it is over or the player
// goes away. It returns once everything has been written.
func (gs *GameSession) Serve(ctx context.Context, conn *websocket.Conn, tickRate int) (model.Result, error) {
	gs.Conn = conn
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			gs.mu.Lock()
			gs.DebugLastPing = time.Now()
			gs.DebugPings++
			gs.mu.Unlock()
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})

	written := make(chan struct{})
	go gs.LoopChannelRead()
	go func() {
		gs.LoopChannelWrite()
		close(written)
	}()

	gs.setState(GS_PLAY)
	gs.MessagesToSend <- gs.MakeGameSetupMessage()

	clock := game.NewTickerClock(tickRate)
	defer clock.Stop()
	res, err := game.Run(ctx, gs.Game, gs, gs, clock)
	if err != nil {
		gs.setState(GS_ERR)
	} else {
		gs.setState(GS_OVER)
		select {
		case gs.MessagesToSend <- model.ServerMessage{Results: []model.Result{res}}:
		case <-gs.failed:
		}
	}
	close(gs.MessagesToSend)
	<-written

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, gs.Game.State().Name()),
		time.Now().Add(time.Second))
	return res, err
}

func (gs *GameSession) Intents() <-chan model.Intent {
	return gs.intents
}

// Render queues a frame for the writer. When the writer falls behind the
// frame is dropped, its eaten dots ride along with the next one.
func (gs *GameSession) Render(_ *model.Board, f model.Frame) error {
	select {
	case <-gs.failed:
		return ErrConnectionLost
	default:
	}
	if len(gs.pending) > 0 {
		f.Eaten = append(gs.pending, f.Eaten...)
	}
	select {
	case gs.MessagesToSend <- model.ServerMessage{Frames: []model.Frame{f}}:
		gs.pending = nil
	default:
		gs.pending = f.Eaten
		gs.mu.Lock()
		gs.DebugDropped++
		gs.mu.Unlock()
		log.WithFields(log.Fields{"session": gs.Id, "tick": f.Tick}).Debug("dropping frame, writer is behind")
	}
	return nil
}

func (gs *GameSession) LoopChannelRead() {
	defer close(gs.intents)
	entry := log.WithField("session", gs.Id)
	entry.Debug("LoopChannelRead STARTED")
	for {
		_, r, err := gs.Conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				entry.WithError(err).Warn("LoopChannelRead err reading message from Conn")
			}
			break
		}
		cm := &model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(cm); err != nil {
			entry.WithError(err).Warn("LoopChannelRead cant decode")
			break
		}
		gs.mu.Lock()
		gs.DebugLastMessage = time.Now()
		gs.DebugInMessages++
		gs.mu.Unlock()

		select {
		case gs.intents <- cm.Intent:
		default:
			entry.WithField("intent", cm.Intent.Name()).Warn("dropping intent, queue FULL")
		}
	}
	entry.Debug("LoopChannelRead ENDED")
}

// LoopChannelWrite only consumes, a stuck socket never blocks the game.
func (gs *GameSession) LoopChannelWrite() {
	entry := log.WithField("session", gs.Id)
	entry.Debug("LoopChannelWrite STARTED")
	for mes := range gs.MessagesToSend {
		if err := gs.write(mes); err != nil {
			entry.WithError(err).Warn("LoopChannelWrite cant write")
			gs.fail()
			break
		}
		gs.mu.Lock()
		gs.DebugOutMessages++
		gs.mu.Unlock()
	}
	entry.Debug("LoopChannelWrite ENDED")
}

func (gs *GameSession) write(mes model.ServerMessage) error {
	w, err := gs.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (gs *GameSession) fail() {
	gs.failOnce.Do(func() {
		gs.setState(GS_ERR)
		close(gs.failed)
	})
}

func (gs *GameSession) setState(state GameSessionState) {
	gs.mu.Lock()
	gs.State = state
	gs.mu.Unlock()
}

// Stats copies the debug counters, the socket loops keep updating them.
func (gs *GameSession) Stats() SessionStats {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return SessionStats{
		InMessages:  gs.DebugInMessages,
		OutMessages: gs.DebugOutMessages,
		Dropped:     gs.DebugDropped,
		Pings:       gs.DebugPings,
		LastMessage: gs.DebugLastMessage,
		LastPing:    gs.DebugLastPing,
	}
}

func (gs *GameSession) GetState() GameSessionState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.State
}
