package services

import (
	"context"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoomReaderSvc defines read operations on the ledger
type RoomReaderSvc interface {
	// FindByRoomNumber returns the first room whose number matches case-insensitively.
	FindByRoomNumber(ctx context.Context, roomNumber string) (domain.Room, bool)

	// Search returns rooms whose number or guest contains query, ignoring case.
	// An empty query returns every room.
	Search(ctx context.Context, query string) []domain.Room

	// ListAll returns every room in ledger order.
	ListAll(ctx context.Context) []domain.Room

	// SuggestRoomNumbers returns known room numbers close to roomNumber.
	SuggestRoomNumbers(ctx context.Context, roomNumber string) []string
}

// RoomWriterSvc defines inventory and check-in operations
type RoomWriterSvc interface {
	// AddRoom appends a new vacant room.
	AddRoom(ctx context.Context, roomNumber, roomType, pricePerNight string) (domain.Room, error)

	// CheckIn puts guest into a vacant room.
	CheckIn(ctx context.Context, roomNumber, guest string) (domain.Room, error)
}

// CheckoutSvc defines the two-phase checkout
type CheckoutSvc interface {
	// PreviewCheckout computes the bill for an occupied room without changing it.
	PreviewCheckout(ctx context.Context, roomNumber string, taxPercent, discountPercent decimal.Decimal) (domain.Bill, error)

	// FinalizeCheckout vacates the room the bill was computed for, as of now, and
	// returns the bill recomputed at that moment with the bill's percentages.
	FinalizeCheckout(ctx context.Context, bill domain.Bill) (domain.Room, domain.Bill, error)

	// CancelCheckout discards a preview. It always returns ErrCancelled.
	CancelCheckout(ctx context.Context, bill domain.Bill) error

	// CheckOut previews, asks confirm, then finalizes or cancels. On success it
	// returns the finalized bill.
	CheckOut(ctx context.Context, roomNumber string, taxPercent, discountPercent decimal.Decimal, confirm func(domain.Bill) bool) (domain.Bill, error)
}

// LedgerPersistenceSvc defines snapshot operations against the ledger store
type LedgerPersistenceSvc interface {
	// Save writes the whole ledger to the store.
	Save(ctx context.Context) error

	// Reload replaces the ledger with the store's contents.
	Reload(ctx context.Context) error

	// LoadOrSeed reloads and, when the store has never been written, seeds rooms.
	LoadOrSeed(ctx context.Context, seed []domain.Room) error

	// Seed replaces the ledger contents with rooms.
	Seed(ctx context.Context, rooms []domain.Room)
}

// RoomSvcFacade combines all ledger service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
	CheckoutSvc
	LedgerPersistenceSvc
}
