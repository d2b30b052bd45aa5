package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/skillswap/skillswap-cli/internal/buildinfo"
	"github.com/skillswap/skillswap-cli/internal/client/cli"
	"github.com/skillswap/skillswap-cli/internal/client/config"
	"github.com/skillswap/skillswap-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
