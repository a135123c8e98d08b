package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/uploads/app/uploads"
	"github.com/dmitrymomot/uploads/core/config"
	"github.com/dmitrymomot/uploads/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg uploads.Config
	config.MustLoad(&cfg)

	log := uploads.NewLogger(cfg)

	app, err := uploads.NewApp(uploads.WithConfig(cfg), uploads.WithLogger(log))
	if err != nil {
		log.Error("failed to initialize application", logger.Error(err))
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.Run(ctx))

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped", slog.String("app", cfg.AppName))
}
