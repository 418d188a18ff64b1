package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/handlers"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func (d *Desk) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP desk API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Value: d.cfg.Port, Usage: "listen port"},
		},
		Action: d.serve,
	}
}

// serve runs until the context is cancelled, then shuts down and saves the ledger.
func (d *Desk) serve(c *cli.Context) error {
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}

	cfg := *d.cfg
	cfg.DataFile = c.String("data")
	cfg.Port = c.String("port")

	router, err := handlers.NewRouter(&cfg, d.logger, container)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	d.logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("data_file", cfg.DataFile))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	d.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		d.logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	return container.Rooms.Save(middleware.WithLogger(context.Background(), d.logger))
}
