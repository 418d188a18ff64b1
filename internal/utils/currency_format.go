package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for money.
const DisplayPrecision = 2

// FormatAmount formats an amount with the display precision.
// Example: 3300 returns "3300.00", 12.345 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatStoredAmount formats an amount for storage: at least the display precision,
// more only when the value carries it, so nothing is lost on a round trip.
func FormatStoredAmount(amount decimal.Decimal) string {
	if amount.Exponent() < -DisplayPrecision {
		return amount.String()
	}
	return amount.StringFixed(DisplayPrecision)
}
