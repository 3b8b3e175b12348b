package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/client"
	"github.com/zucenko/mazechase/model"
)

// playRemote follows a game running on a server. Key presses go up, frames
// come down and are drawn like local ones.
func playRemote(ctx context.Context, v *view, url string) error {
	remote, err := client.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer remote.Close()

	board, err := remote.Board()
	if err != nil {
		return err
	}

	var result *model.Result
	for {
		select {
		case <-ctx.Done():
			return nil
		case intent := <-v.intents:
			if result != nil {
				if intent == model.IntentConfirm || intent == model.IntentQuit {
					return nil
				}
				continue
			}
			if err := remote.Send(intent); err != nil {
				log.WithError(err).Warn("cannot send intent")
			}
		case mes, ok := <-remote.Messages:
			if !ok {
				if result != nil {
					v.end(ctx, *result)
				}
				return nil
			}
			for _, f := range mes.Frames {
				client.Apply(board, f)
				if err := v.Render(board, f); err != nil {
					return err
				}
			}
			if len(mes.Results) > 0 {
				result = &mes.Results[0]
			}
		}
	}
}
