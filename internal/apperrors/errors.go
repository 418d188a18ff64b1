package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested room could not be found.
var ErrNotFound = errors.New("room not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a room that already exists.
var ErrDuplicate = errors.New("room already exists")

// ErrAlreadyOccupied indicates a check-in into a room that already has a guest.
// Returned wrapped in an *OccupiedError carrying the current guest.
var ErrAlreadyOccupied = errors.New("room is already occupied")

// ErrAlreadyVacant is informational: there is nobody to check out.
var ErrAlreadyVacant = errors.New("room is already vacant")

// ErrCancelled indicates the operator declined to confirm a checkout.
var ErrCancelled = errors.New("checkout cancelled")

// ErrStaleBill indicates a previewed bill no longer matches the room it was computed for.
var ErrStaleBill = fmt.Errorf("bill no longer matches the room: %w", ErrValidation)

// ErrIO indicates the ledger file could not be read or written.
var ErrIO = errors.New("ledger file i/o failure")

// OccupiedError reports the guest currently holding a room.
type OccupiedError struct {
	RoomNumber string
	Guest      string
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("room %s is already occupied by %s", e.RoomNumber, e.Guest)
}

func (e *OccupiedError) Is(target error) bool {
	return target == ErrAlreadyOccupied
}

// IOError wraps a file system failure of the ledger store.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError wraps err as an *IOError, or returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
