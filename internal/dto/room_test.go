package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate_CreateRoomRequest(t *testing.T) {
	assert.NoError(t, Validate(CreateRoomRequest{RoomNumber: "101", RoomType: "Single", PricePerNight: "1200.50"}))

	err := Validate(CreateRoomRequest{RoomNumber: "101", RoomType: "Single", PricePerNight: "cheap"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "PricePerNight failed numeric")

	err = Validate(CreateRoomRequest{RoomType: "Single", PricePerNight: "10"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "RoomNumber failed required")
}

func TestValidate_CheckInRequest(t *testing.T) {
	assert.NoError(t, Validate(CheckInRequest{GuestName: "Jane Doe"}))
	assert.ErrorIs(t, Validate(CheckInRequest{}), apperrors.ErrValidation)
}

func TestToRoomResponse(t *testing.T) {
	room := domain.NewRoom("102", "Single", decimal.NewFromInt(1200))
	room.CheckIn("Jane Doe", "2024-01-10 14:30")

	res := ToRoomResponse(room)

	assert.Equal(t, RoomResponse{
		RoomNumber:    "102",
		RoomType:      "Single",
		PricePerNight: "1200.00",
		Status:        "OCCUPIED",
		GuestName:     "Jane Doe",
		CheckIn:       "2024-01-10 14:30",
		CheckOut:      "",
	}, res)
}

func TestToBillResponse(t *testing.T) {
	room := domain.NewRoom("101", "Single", decimal.NewFromInt(1000))
	room.CheckIn("Jane Doe", "2024-01-11 00:00")
	bill := billing.Calculate(room, time.Date(2024, 1, 13, 12, 0, 0, 0, time.Local), decimal.NewFromInt(10), decimal.Zero)

	res := ToBillResponse(bill)

	assert.Equal(t, int64(3), res.Nights)
	assert.Equal(t, "3000.00", res.Subtotal)
	assert.Equal(t, "300.00", res.TaxAmount)
	assert.Equal(t, "3300.00", res.Total)
	assert.Equal(t, "2024-01-13 12:00", res.CheckOut)
	assert.Contains(t, res.Receipt, "Total payable: 3300.00")
	assert.Equal(t, bill, res.Bill)
}
