package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/hotel_management_app/internal/cli"
	"github.com/SscSPs/hotel_management_app/internal/platform/config"
)

// @title Hotel Desk API
// @version 1.0
// @description Front desk ledger: rooms, check-in and two-phase checkout.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger. Logs go to stderr so command output stays clean.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, logger)
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
