package csvfile

import (
	"strings"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Header is the first line of every ledger file. It is written on save and skipped on load.
const Header = "roomNumber,roomType,price,guestName,checkIn,checkOut"

const (
	colRoomNumber = iota
	colRoomType
	colPrice
	colGuestName
	colCheckIn
	colCheckOut
)

// EscapeField quotes a field that contains a comma, a double quote or a newline,
// doubling any inner quotes. Other fields are written as-is.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ParseLine splits one record into fields.
//
// Inside quotes a doubled quote emits one quote and a lone quote closes the quoted
// section. Outside quotes a quote opens a quoted section without being emitted, a
// comma ends the field and anything else is literal. The last field is always
// emitted, so an empty line yields one empty field.
func ParseLine(line string) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(ch)
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	return append(fields, cur.String())
}

// quoteOpen reports whether a quoted field is still open at the end of s. Every
// quote either toggles the quoted state or belongs to a doubled pair, so the
// parity of the quote count is the final state.
func quoteOpen(s string) bool {
	return strings.Count(s, `"`)%2 == 1
}

// FormatRecord renders a room as one escaped line without the trailing newline.
func FormatRecord(r domain.Room) string {
	fields := []string{
		EscapeField(r.Number),
		EscapeField(r.Type),
		utils.FormatStoredAmount(r.PricePerNight),
		EscapeField(r.GuestName()),
		EscapeField(r.CheckedInAt().String()),
		EscapeField(r.CheckedOutAt.String()),
	}
	return strings.Join(fields, ",")
}

// RoomFromFields builds a room from parsed fields. Missing trailing fields are
// empty, an unparsable price is zero, and a row without a guest is vacant.
func RoomFromFields(fields []string) domain.Room {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	price, err := decimal.NewFromString(strings.TrimSpace(field(colPrice)))
	if err != nil {
		price = decimal.Zero
	}

	room := domain.NewRoom(field(colRoomNumber), field(colRoomType), price)
	if guest := field(colGuestName); guest != "" {
		room.Stay = &domain.Stay{Guest: guest, CheckedInAt: domain.Stamp(field(colCheckIn))}
	}
	room.CheckedOutAt = domain.Stamp(field(colCheckOut))
	return room
}
