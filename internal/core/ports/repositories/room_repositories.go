package repositories

import (
	"context"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
)

// RoomReader defines read operations for the persisted ledger
type RoomReader interface {
	// LoadRooms returns every stored room in ledger order.
	// A store that holds no data yet returns an empty slice, not an error.
	LoadRooms(ctx context.Context) ([]domain.Room, error)

	// Exists reports whether the store already holds data.
	Exists(ctx context.Context) bool
}

// RoomWriter defines write operations for the persisted ledger
type RoomWriter interface {
	// SaveRooms replaces the stored ledger with rooms.
	SaveRooms(ctx context.Context, rooms []domain.Room) error
}

// RoomStore combines all ledger persistence interfaces
type RoomStore interface {
	RoomReader
	RoomWriter
}
