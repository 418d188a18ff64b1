package cli_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/cli"
	"github.com/SscSPs/hotel_management_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deskFixture struct {
	t    *testing.T
	cfg  *config.Config
	data string
	now  time.Time
}

func newDeskFixture(t *testing.T) *deskFixture {
	return &deskFixture{
		t: t,
		cfg: &config.Config{
			DataFile:               "unused.csv",
			Port:                   "8080",
			DefaultTaxPercent:      decimal.NewFromInt(5),
			DefaultDiscountPercent: decimal.Zero,
			SeedDemoRooms:          true,
			RateLimit:              "1000-M",
		},
		data: filepath.Join(t.TempDir(), "bookings.csv"),
		now:  time.Date(2024, 1, 10, 14, 30, 0, 0, time.Local),
	}
}

// run executes one hotel_desk invocation with stdin and returns stdout.
func (f *deskFixture) run(stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	app := cli.NewApp(f.cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		cli.WithIO(strings.NewReader(stdin), &out),
		cli.WithClock(func() time.Time { return f.now }),
	)
	err := app.Run(append([]string{"hotel_desk", "--data", f.data}, args...))
	return out.String(), err
}

func (f *deskFixture) mustRun(stdin string, args ...string) string {
	out, err := f.run(stdin, args...)
	require.NoError(f.t, err, out)
	return out
}

func (f *deskFixture) file() string {
	b, err := os.ReadFile(f.data)
	require.NoError(f.t, err)
	return string(b)
}

func TestRoomsList_SeedsDemoRooms(t *testing.T) {
	f := newDeskFixture(t)

	out := f.mustRun("", "rooms", "list")
	for _, number := range []string{"101", "102", "201", "301"} {
		assert.Contains(t, out, number)
	}
	assert.Contains(t, out, "VACANT")

	// listing does not write
	_, err := os.Stat(f.data)
	assert.True(t, os.IsNotExist(err))
}

func TestRoomsList_NoSeed(t *testing.T) {
	f := newDeskFixture(t)
	f.cfg.SeedDemoRooms = false

	out := f.mustRun("", "rooms", "list")
	assert.NotContains(t, out, "101")
}

func TestRoomsAdd(t *testing.T) {
	f := newDeskFixture(t)

	out := f.mustRun("", "rooms", "add", "--number", "401", "--type", "Suite", "--price", "4500")
	assert.Contains(t, out, "Added room 401 (Suite, 4500.00 per night)")
	assert.Contains(t, f.file(), "401,Suite,4500.00,,,\n")

	_, err := f.run("", "rooms", "add", "--number", "401", "--type", "Suite", "--price", "1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = f.run("", "rooms", "add", "--number", "402", "--type", "Suite", "--price", "cheap")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRoomsSearchAndShow(t *testing.T) {
	f := newDeskFixture(t)
	f.mustRun("", "checkin", "--room", "201", "--guest", "Jane Doe")

	out := f.mustRun("", "rooms", "search", "jane")
	assert.Contains(t, out, "201")
	assert.NotContains(t, out, "101")

	out = f.mustRun("", "rooms", "search", "nobody")
	assert.Contains(t, out, "No matching rooms")

	out = f.mustRun("", "rooms", "show", "201")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "OCCUPIED")

	_, err := f.run("", "rooms", "show", "10l")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "101")
}

func TestCheckIn(t *testing.T) {
	f := newDeskFixture(t)

	out := f.mustRun("", "checkin", "--room", "102", "--guest", "Jane Doe")
	assert.Contains(t, out, "Checked in Jane Doe to room 102 at 2024-01-10 14:30")
	assert.Contains(t, f.file(), "102,Single,1200.00,Jane Doe,2024-01-10 14:30,\n")

	_, err := f.run("", "checkin", "--room", "102", "--guest", "John Roe")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyOccupied)

	_, err = f.run("", "checkin", "--room", "999", "--guest", "John Roe")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCheckOut_Confirmed(t *testing.T) {
	f := newDeskFixture(t)
	f.mustRun("", "checkin", "--room", "101", "--guest", "Jane Doe")
	f.now = f.now.Add(60 * time.Hour)

	out := f.mustRun("y\n", "checkout", "--room", "101", "--tax", "10")
	assert.Contains(t, out, "Nights charged: 3")
	assert.Contains(t, out, "Total payable: 3960.00")
	assert.Contains(t, out, "Confirm checkout and payment? [y/N]")
	assert.Contains(t, out, "Checked out room 101. Total paid: 3960.00")
	assert.Contains(t, f.file(), "101,Single,1200.00,,,2024-01-13 02:30\n")
}

func TestCheckOut_DefaultsAndYesFlag(t *testing.T) {
	f := newDeskFixture(t)
	f.mustRun("", "checkin", "--room", "301", "--guest", "Jane Doe")

	out := f.mustRun("", "checkout", "--room", "301", "--yes")
	assert.NotContains(t, out, "Confirm checkout")
	// one night at 3000 with the default 5% tax
	assert.Contains(t, out, "Total paid: 3150.00")
}

func TestCheckOut_Declined(t *testing.T) {
	f := newDeskFixture(t)
	f.mustRun("", "checkin", "--room", "101", "--guest", "Jane Doe")

	out := f.mustRun("n\n", "checkout", "--room", "101")
	assert.Contains(t, out, "Checkout cancelled for room 101")
	assert.Contains(t, f.file(), "101,Single,1200.00,Jane Doe,2024-01-10 14:30,\n")

	// no answer at all counts as no
	out = f.mustRun("", "checkout", "--room", "101")
	assert.Contains(t, out, "Checkout cancelled for room 101")
}

func TestCheckOut_Vacant(t *testing.T) {
	f := newDeskFixture(t)

	_, err := f.run("y\n", "checkout", "--room", "101")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVacant)
}

func TestExport(t *testing.T) {
	f := newDeskFixture(t)
	report := filepath.Join(t.TempDir(), "report.xlsx")

	out := f.mustRun("", "export", "--out", report)
	assert.Contains(t, out, "Exported 4 rooms")

	b, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("PK")), "xlsx is a zip archive")
}

func TestUnreadableLedgerFails(t *testing.T) {
	f := newDeskFixture(t)
	f.data = t.TempDir() // a directory cannot be read as a file

	_, err := f.run("", "rooms", "list")
	var ioErr *apperrors.IOError
	assert.True(t, errors.As(err, &ioErr))
}
