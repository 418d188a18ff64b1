package billing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/utils"
)

const receiptRule = "-------------------------------"

// Receipt renders the bill the way it is shown to the operator before they confirm
// checkout and payment.
func Receipt(b domain.Bill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bill for room %s\n", b.RoomNumber)
	sb.WriteString(receiptRule + "\n")
	fmt.Fprintf(&sb, "Guest: %s\n", b.Guest)
	fmt.Fprintf(&sb, "Room type: %s\n", b.RoomType)
	fmt.Fprintf(&sb, "Price per night: %s\n", utils.FormatAmount(b.PricePerNight))
	if b.CheckInEstimated {
		fmt.Fprintf(&sb, "Check-in: %s (unreadable, charged as one day)\n", b.CheckedInAt)
	} else {
		fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckedInAt)
	}
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOutStamp())
	fmt.Fprintf(&sb, "Nights charged: %d\n", b.Nights)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Subtotal (n x price): %s\n", utils.FormatAmount(b.Subtotal))
	fmt.Fprintf(&sb, "Discount (%s%%): -%s\n", utils.FormatAmount(b.DiscountPercent), utils.FormatAmount(b.DiscountAmount))
	fmt.Fprintf(&sb, "Taxable amount: %s\n", utils.FormatAmount(b.Taxable))
	fmt.Fprintf(&sb, "Tax (%s%%): +%s\n", utils.FormatAmount(b.TaxPercent), utils.FormatAmount(b.TaxAmount))
	sb.WriteString(receiptRule + "\n")
	fmt.Fprintf(&sb, "Total payable: %s\n", utils.FormatAmount(b.Total))
	return sb.String()
}
