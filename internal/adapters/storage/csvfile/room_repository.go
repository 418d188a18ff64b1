package csvfile

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_management_app/internal/core/ports/repositories"
)

// Store keeps the ledger in a single CSV file.
type Store struct {
	path string
}

// NewStore creates a store bound to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ portsrepo.RoomStore = (*Store)(nil)

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the ledger file is present.
func (s *Store) Exists(ctx context.Context) bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// LoadRooms reads the ledger file. A missing file is an empty ledger.
func (s *Store) LoadRooms(ctx context.Context) ([]domain.Room, error) {
	return Load(s.path)
}

// SaveRooms replaces the ledger file with rooms.
func (s *Store) SaveRooms(ctx context.Context, rooms []domain.Room) error {
	return Save(rooms, s.path)
}

// Save writes the header and one line per room. The file is written next to its
// destination and renamed into place, so a failed save leaves the old file intact.
func Save(rooms []domain.Room, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return apperrors.NewIOError("save", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Write(tmp, rooms); err != nil {
		tmp.Close()
		return apperrors.NewIOError("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewIOError("save", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return apperrors.NewIOError("save", path, err)
	}
	return nil
}

// Write encodes rooms to w in ledger file format.
func Write(w io.Writer, rooms []domain.Room) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, r := range rooms {
		if _, err := bw.WriteString(FormatRecord(r) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads the ledger file at path. A missing file yields an empty ledger and no
// error; only read failures are reported, malformed rows are defaulted.
func Load(path string) ([]domain.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Room{}, nil
		}
		return nil, apperrors.NewIOError("load", path, err)
	}
	defer f.Close()

	rooms, err := Read(f)
	if err != nil {
		return nil, apperrors.NewIOError("load", path, err)
	}
	return rooms, nil
}

// Read decodes ledger file content. The first line is the header and is not checked.
// Physical lines are joined while a quoted field is open, so values with embedded
// newlines come back whole. A trailing \r is dropped from each record, but kept
// inside quoted fields. Blank lines are skipped.
func Read(r io.Reader) ([]domain.Room, error) {
	br := bufio.NewReader(r)
	rooms := []domain.Room{}

	headerSeen := false
	var pending strings.Builder
	open := false

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		atEOF := errors.Is(err, io.EOF)
		if atEOF && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")

		if !headerSeen {
			headerSeen = true
		} else {
			if open {
				pending.WriteString("\n")
			}
			pending.WriteString(line)
			open = quoteOpen(pending.String())
			if !open {
				// A CRLF ending belongs to the record only while a quoted field is open.
				record := strings.TrimSuffix(pending.String(), "\r")
				pending.Reset()
				// Blank lines are skipped rather than loaded as a room with an empty number.
				if record != "" {
					rooms = append(rooms, RoomFromFields(ParseLine(record)))
				}
			}
		}
		if atEOF {
			break
		}
	}

	// An unterminated quote runs to the end of the file.
	if open && pending.Len() > 0 {
		rooms = append(rooms, RoomFromFields(ParseLine(strings.TrimSuffix(pending.String(), "\r"))))
	}
	return rooms, nil
}
