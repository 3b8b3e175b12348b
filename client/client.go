// Package client plays a game hosted by the server over a websocket.
package client

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/maze"
	"github.com/zucenko/mazechase/model"
)

var ErrNoSetup = errors.New("server did not send a setup")

type Remote struct {
	Conn     *websocket.Conn
	Setup    model.Setup
	Messages chan model.ServerMessage

	mu sync.Mutex
}

// Dial connects to url and waits for the game setup.
func Dial(ctx context.Context, url string) (*Remote, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (%s)", url, err, resp.Status)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	r := &Remote{Conn: conn, Messages: make(chan model.ServerMessage, 64)}
	mes, err := r.read()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if len(mes.Setup) == 0 {
		conn.Close()
		return nil, ErrNoSetup
	}
	r.Setup = mes.Setup[0]
	log.WithFields(log.Fields{
		"session": r.Setup.SessionId,
		"cols":    r.Setup.Cols,
		"rows":    r.Setup.Rows,
	}).Info("joined game")

	go r.LoopChannelRead()
	return r, nil
}

// Board rebuilds the maze the server sent.
func (r *Remote) Board() (*model.Board, error) {
	grid, err := maze.ParseLayout(strings.NewReader(r.Setup.Layout))
	if err != nil {
		return nil, err
	}
	return model.NewBoard(grid), nil
}

func (r *Remote) Send(intent model.Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, err := r.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(model.ClientMessage{Intent: intent}); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// LoopChannelRead forwards server messages until the connection closes,
// then closes Messages.
func (r *Remote) LoopChannelRead() {
	defer close(r.Messages)
	for {
		mes, err := r.read()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("LoopChannelRead connection lost")
			}
			return
		}
		r.Messages <- mes
	}
}

func (r *Remote) read() (model.ServerMessage, error) {
	var mes model.ServerMessage
	_, reader, err := r.Conn.NextReader()
	if err != nil {
		return mes, err
	}
	err = gob.NewDecoder(reader).Decode(&mes)
	return mes, err
}

func (r *Remote) Close() error {
	r.mu.Lock()
	_ = r.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	r.mu.Unlock()
	return r.Conn.Close()
}

// Apply brings board up to date with a frame.
func Apply(board *model.Board, f model.Frame) {
	for _, c := range f.Eaten {
		board.Eat(c)
	}
}
