package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the computed charge for closing a stay. It is produced by a checkout
// preview and carries everything needed to finalize that same checkout later.
type Bill struct {
	RoomNumber       string          `json:"roomNumber"`
	RoomType         string          `json:"roomType"`
	Guest            string          `json:"guest"`
	PricePerNight    decimal.Decimal `json:"pricePerNight"`
	CheckedInAt      Stamp           `json:"checkedInAt"`
	CheckInEstimated bool            `json:"checkInEstimated"` // check-in stamp was missing or unreadable
	CheckOutAt       time.Time       `json:"checkOutAt"`
	Nights           int64           `json:"nights"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	Taxable          decimal.Decimal `json:"taxable"`
	TaxPercent       decimal.Decimal `json:"taxPercent"`
	TaxAmount        decimal.Decimal `json:"taxAmount"`
	Total            decimal.Decimal `json:"total"`
}

// CheckOutStamp is the checkout moment in ledger form.
func (b Bill) CheckOutStamp() Stamp {
	return NewStamp(b.CheckOutAt)
}
