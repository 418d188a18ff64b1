package services

import (
	"context"
	"io"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
)

// ReportExporter renders a snapshot of the ledger as a downloadable report
type ReportExporter interface {
	// ExportRooms writes rooms, in the given order, to w.
	ExportRooms(ctx context.Context, w io.Writer, rooms []domain.Room) error
}
