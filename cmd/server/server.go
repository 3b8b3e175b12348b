package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	Server := Server{
		GameServer: server.NewGameServer(cfg),
	}
	go Server.GameServer.Loop(ctx)
	Server.routes()

	httpServer := &http.Server{Addr: cfg.Addr(), Handler: Server.router}
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		httpServer.Close()
	}()

	log.WithFields(log.Fields{
		"addr": cfg.Addr(),
		"maze": cfg.Maze.Name(),
	}).Info("listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
