// Package cli is the command line front desk: every core operation as a
// subcommand over the CSV ledger, plus the HTTP desk API behind "serve".
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/adapters/export/xlsx"
	"github.com/SscSPs/hotel_management_app/internal/adapters/storage/csvfile"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/core/services"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/SscSPs/hotel_management_app/internal/platform/config"
	"github.com/urfave/cli/v2"
)

// Desk holds what every command needs: configuration, the logger and the
// operator's terminal.
type Desk struct {
	cfg    *config.Config
	logger *slog.Logger
	in     *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// Option configures a Desk.
type Option func(*Desk)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(d *Desk) {
		d.in = bufio.NewReader(in)
		d.out = out
	}
}

// WithClock replaces time.Now for check-in and checkout stamps.
func WithClock(now func() time.Time) Option {
	return func(d *Desk) {
		d.now = now
	}
}

// NewApp builds the hotel_desk command tree.
func NewApp(cfg *config.Config, logger *slog.Logger, options ...Option) *cli.App {
	d := &Desk{
		cfg:    cfg,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, option := range options {
		option(d)
	}

	return &cli.App{
		Name:      "hotel_desk",
		Usage:     "front desk ledger for a small hotel",
		Writer:    d.out,
		ErrWriter: d.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Value: cfg.DataFile,
				Usage: "path to the bookings CSV file",
			},
		},
		Commands: []*cli.Command{
			d.roomsCommand(),
			d.checkInCommand(),
			d.checkOutCommand(),
			d.exportCommand(),
			d.serveCommand(),
		},
		// errors are reported by the caller
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// open loads the ledger named by --data, seeding demo rooms on first use.
func (d *Desk) open(c *cli.Context) (context.Context, *portssvc.ServiceContainer, error) {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = middleware.WithLogger(ctx, d.logger.With(slog.String("command", c.Command.FullName())))

	store := csvfile.NewStore(c.String("data"))
	container := services.NewServiceContainer(store, xlsx.NewExporter(), services.WithClock(d.now))

	var seed []domain.Room
	if d.cfg.SeedDemoRooms {
		seed = services.DemoRooms()
	}
	if err := container.Rooms.LoadOrSeed(ctx, seed); err != nil {
		return nil, nil, err
	}
	return ctx, container, nil
}
