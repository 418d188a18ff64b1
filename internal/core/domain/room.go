package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OccupancyStatus is the display form of a room's occupancy.
type OccupancyStatus string

const (
	Vacant   OccupancyStatus = "VACANT"
	Occupied OccupancyStatus = "OCCUPIED"
)

// Stay is the occupied variant of a room: who is in it and since when.
type Stay struct {
	Guest       string `json:"guest"`
	CheckedInAt Stamp  `json:"checkedInAt"`
}

// Room is a single entry of the front desk ledger. A nil Stay means the room is vacant.
type Room struct {
	Number        string          `json:"roomNumber"`
	Type          string          `json:"roomType"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Stay          *Stay           `json:"stay,omitempty"`
	CheckedOutAt  Stamp           `json:"checkedOutAt"` // most recent checkout, empty if never
}

// NewRoom returns a vacant room that has never been occupied.
func NewRoom(number, roomType string, price decimal.Decimal) Room {
	return Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: price,
	}
}

// IsOccupied reports whether a guest is currently checked in.
func (r Room) IsOccupied() bool {
	return r.Stay != nil
}

// Status returns Vacant or Occupied.
func (r Room) Status() OccupancyStatus {
	if r.IsOccupied() {
		return Occupied
	}
	return Vacant
}

// GuestName returns the current guest, or "" for a vacant room.
func (r Room) GuestName() string {
	if r.Stay == nil {
		return ""
	}
	return r.Stay.Guest
}

// CheckedInAt returns the check-in stamp of the current stay, or "" for a vacant room.
func (r Room) CheckedInAt() Stamp {
	if r.Stay == nil {
		return ""
	}
	return r.Stay.CheckedInAt
}

// Key is the case-folded room number used for lookups.
func (r Room) Key() string {
	return NormalizeRoomNumber(r.Number)
}

// Matches reports whether the room number or guest name contains the already
// lower-cased query.
func (r Room) Matches(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Number), lowerQuery) ||
		strings.Contains(strings.ToLower(r.GuestName()), lowerQuery)
}

// Clone returns a deep copy so callers cannot reach ledger state through the Stay pointer.
func (r Room) Clone() Room {
	if r.Stay != nil {
		stay := *r.Stay
		r.Stay = &stay
	}
	return r
}

// CheckIn moves the room to the occupied state.
func (r *Room) CheckIn(guest string, at Stamp) {
	r.Stay = &Stay{Guest: guest, CheckedInAt: at}
	r.CheckedOutAt = ""
}

// CheckOut moves the room to the vacant state.
func (r *Room) CheckOut(at Stamp) {
	r.Stay = nil
	r.CheckedOutAt = at
}
