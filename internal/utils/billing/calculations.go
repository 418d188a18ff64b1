package billing

import (
	"strings"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FallbackStay is how long a stay is assumed to have lasted when its check-in
// stamp is missing or unreadable.
const FallbackStay = 24 * time.Hour

var (
	hundred  = decimal.NewFromInt(100)
	msPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Millisecond))
	oneNight = decimal.NewFromInt(1)
)

// Calculate computes the bill for closing the room's current stay at now.
// It is a pure function: the room is not modified.
//
// Nights are the elapsed days rounded up, with a minimum of one. The discount is
// taken off the subtotal before tax is applied.
func Calculate(room domain.Room, now time.Time, taxPercent, discountPercent decimal.Decimal) domain.Bill {
	checkIn, ok := room.CheckedInAt().Time()
	if !ok {
		checkIn = now.Add(-FallbackStay)
	}

	nights := NightsBetween(checkIn, now)
	subtotal := decimal.NewFromInt(nights).Mul(room.PricePerNight)

	discountAmount := subtotal.Mul(discountPercent).Div(hundred)
	taxable := subtotal.Sub(discountAmount)
	taxAmount := taxable.Mul(taxPercent).Div(hundred)
	total := taxable.Add(taxAmount)

	return domain.Bill{
		RoomNumber:       room.Number,
		RoomType:         room.Type,
		Guest:            room.GuestName(),
		PricePerNight:    room.PricePerNight,
		CheckedInAt:      room.CheckedInAt(),
		CheckInEstimated: !ok,
		CheckOutAt:       now,
		Nights:           nights,
		Subtotal:         subtotal,
		DiscountPercent:  discountPercent,
		DiscountAmount:   discountAmount,
		Taxable:          taxable,
		TaxPercent:       taxPercent,
		TaxAmount:        taxAmount,
		Total:            total,
	}
}

// NightsBetween returns max(1, ceil(elapsed days)) at millisecond resolution.
func NightsBetween(checkIn, checkOut time.Time) int64 {
	elapsed := decimal.NewFromInt(checkOut.Sub(checkIn).Milliseconds())
	nights := elapsed.Div(msPerDay).Ceil()
	if nights.LessThan(oneNight) {
		return 1
	}
	return nights.IntPart()
}

// ParsePercent reads a percentage typed by the operator. Empty or unparsable
// text yields zero.
func ParsePercent(text string) decimal.Decimal {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if text == "" {
		return decimal.Zero
	}
	pct, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return pct
}
