package dto

import (
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/utils"
	"github.com/SscSPs/hotel_management_app/internal/utils/billing"
)

// CreateRoomRequest defines the data needed to add a room to the ledger.
type CreateRoomRequest struct {
	RoomNumber    string `json:"roomNumber" binding:"required,max=32" validate:"required,max=32"`
	RoomType      string `json:"roomType" binding:"required,max=64" validate:"required,max=64"`
	PricePerNight string `json:"pricePerNight" binding:"required,numeric" validate:"required,numeric"`
}

// CheckInRequest defines the data needed to check a guest into a room.
type CheckInRequest struct {
	GuestName string `json:"guestName" binding:"required,max=128" validate:"required,max=128"`
}

// CheckoutRequest carries the operator's tax and discount percentages.
// Omitted values fall back to the configured defaults; unreadable ones count as zero.
type CheckoutRequest struct {
	TaxPercent      string `json:"taxPercent"`
	DiscountPercent string `json:"discountPercent"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomNumber    string `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight string `json:"pricePerNight"`
	Status        string `json:"status"`
	GuestName     string `json:"guestName"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
}

// BillResponse defines the data returned for a checkout preview or completed checkout.
// Bill is the raw bill the caller sends back to confirm the checkout.
type BillResponse struct {
	Bill             domain.Bill `json:"bill"`
	RoomNumber       string      `json:"roomNumber"`
	Guest            string      `json:"guest"`
	CheckIn          string      `json:"checkIn"`
	CheckInEstimated bool        `json:"checkInEstimated"`
	CheckOut         string      `json:"checkOut"`
	Nights           int64       `json:"nights"`
	Subtotal         string      `json:"subtotal"`
	DiscountAmount   string      `json:"discountAmount"`
	Taxable          string      `json:"taxable"`
	TaxAmount        string      `json:"taxAmount"`
	Total            string      `json:"total"`
	Receipt          string      `json:"receipt"`
}

// Checkout outcomes reported in CheckoutOutcomeResponse.Status.
const (
	OutcomeCheckedOut    = "checked_out"
	OutcomeCancelled     = "cancelled"
	OutcomeAlreadyVacant = "already_vacant"
	OutcomeStaleBill     = "stale_bill"
)

// CheckoutOutcomeResponse reports how a checkout request ended.
type CheckoutOutcomeResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Room    *RoomResponse `json:"room,omitempty"`
	Total   string        `json:"total,omitempty"`
}

// RoomNotFoundResponse is returned when a lookup misses, with close room numbers.
type RoomNotFoundResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

// LedgerResponse reports the result of a save or load.
type LedgerResponse struct {
	Message string `json:"message"`
	Rooms   int    `json:"rooms"`
	Path    string `json:"path"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO
func ToRoomResponse(r domain.Room) RoomResponse {
	return RoomResponse{
		RoomNumber:    r.Number,
		RoomType:      r.Type,
		PricePerNight: utils.FormatAmount(r.PricePerNight),
		Status:        string(r.Status()),
		GuestName:     r.GuestName(),
		CheckIn:       r.CheckedInAt().String(),
		CheckOut:      r.CheckedOutAt.String(),
	}
}

// ToListRoomResponse converts a slice of domain.Room to a slice of RoomResponse DTOs
func ToListRoomResponse(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = ToRoomResponse(r)
	}
	return res
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(b domain.Bill) BillResponse {
	return BillResponse{
		Bill:             b,
		RoomNumber:       b.RoomNumber,
		Guest:            b.Guest,
		CheckIn:          b.CheckedInAt.String(),
		CheckInEstimated: b.CheckInEstimated,
		CheckOut:         b.CheckOutStamp().String(),
		Nights:           b.Nights,
		Subtotal:         utils.FormatAmount(b.Subtotal),
		DiscountAmount:   utils.FormatAmount(b.DiscountAmount),
		Taxable:          utils.FormatAmount(b.Taxable),
		TaxAmount:        utils.FormatAmount(b.TaxAmount),
		Total:            utils.FormatAmount(b.Total),
		Receipt:          billing.Receipt(b),
	}
}
