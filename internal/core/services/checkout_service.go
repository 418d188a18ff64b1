package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/utils"
	"github.com/SscSPs/hotel_management_app/internal/utils/billing"
	"github.com/shopspring/decimal"
)

func (s *roomService) PreviewCheckout(ctx context.Context, roomNumber string, taxPercent, discountPercent decimal.Decimal) (domain.Bill, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return domain.Bill{}, fmt.Errorf("room number is required: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.lookup(roomNumber)
	if err != nil {
		return domain.Bill{}, err
	}
	if !room.IsOccupied() {
		return domain.Bill{}, fmt.Errorf("room %s: %w", room.Number, apperrors.ErrAlreadyVacant)
	}

	bill := billing.Calculate(*room, s.now(), taxPercent, discountPercent)
	if bill.CheckInEstimated {
		s.LogWarn(ctx, "Check-in time missing or unreadable, billing one day",
			slog.String("room_number", room.Number),
			slog.String("checked_in_at", room.CheckedInAt().String()))
	}

	s.LogDebug(ctx, "Checkout previewed",
		slog.String("room_number", room.Number),
		slog.Int64("nights", bill.Nights),
		slog.String("total", utils.FormatAmount(bill.Total)))
	return bill, nil
}

// FinalizeCheckout checks the room out at the current time and returns the bill
// recomputed for that moment. Only the bill's identity (room, guest, check-in) and its
// percentages are trusted; its checkout time and amounts are not.
func (s *roomService) FinalizeCheckout(ctx context.Context, bill domain.Bill) (domain.Room, domain.Bill, error) {
	if strings.TrimSpace(bill.RoomNumber) == "" {
		return domain.Room{}, domain.Bill{}, fmt.Errorf("bill has no room number: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.lookup(bill.RoomNumber)
	if err != nil {
		return domain.Room{}, domain.Bill{}, err
	}
	if !room.IsOccupied() {
		return domain.Room{}, domain.Bill{}, fmt.Errorf("room %s: %w", room.Number, apperrors.ErrAlreadyVacant)
	}
	if room.GuestName() != bill.Guest || room.CheckedInAt() != bill.CheckedInAt {
		s.LogWarn(ctx, "Refusing to finalize checkout with a stale bill",
			slog.String("room_number", room.Number),
			slog.String("bill_guest", bill.Guest),
			slog.String("current_guest", room.GuestName()))
		return domain.Room{}, domain.Bill{}, fmt.Errorf("room %s: %w", room.Number, apperrors.ErrStaleBill)
	}

	final := billing.Calculate(*room, s.now(), bill.TaxPercent, bill.DiscountPercent)
	if !final.Total.Equal(bill.Total) {
		s.LogInfo(ctx, "Bill changed since preview",
			slog.String("room_number", room.Number),
			slog.String("previewed_total", utils.FormatAmount(bill.Total)),
			slog.String("total", utils.FormatAmount(final.Total)))
	}

	room.CheckOut(final.CheckOutStamp())

	s.LogInfo(ctx, "Guest checked out",
		slog.String("room_number", room.Number),
		slog.String("guest", final.Guest),
		slog.Int64("nights", final.Nights),
		slog.String("total_paid", utils.FormatAmount(final.Total)))
	return room.Clone(), final, nil
}

func (s *roomService) CancelCheckout(ctx context.Context, bill domain.Bill) error {
	s.LogInfo(ctx, "Checkout cancelled", slog.String("room_number", bill.RoomNumber))
	return fmt.Errorf("room %s: %w", bill.RoomNumber, apperrors.ErrCancelled)
}

func (s *roomService) CheckOut(ctx context.Context, roomNumber string, taxPercent, discountPercent decimal.Decimal, confirm func(domain.Bill) bool) (domain.Bill, error) {
	bill, err := s.PreviewCheckout(ctx, roomNumber, taxPercent, discountPercent)
	if err != nil {
		return domain.Bill{}, err
	}
	if confirm == nil || !confirm(bill) {
		return bill, s.CancelCheckout(ctx, bill)
	}
	_, final, err := s.FinalizeCheckout(ctx, bill)
	if err != nil {
		return bill, err
	}
	return final, nil
}
