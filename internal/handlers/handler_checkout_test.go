package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/dto"
)

func (s *HandlerTestSuite) checkIn(number, guest string) {
	w := s.do(http.MethodPost, "/api/v1/rooms/"+number+"/checkin", dto.CheckInRequest{GuestName: guest})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) preview(number string, body any) dto.BillResponse {
	w := s.do(http.MethodPost, "/api/v1/rooms/"+number+"/checkout/preview", body)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var bill dto.BillResponse
	s.decode(w, &bill)
	return bill
}

func (s *HandlerTestSuite) TestCheckout_PreviewAndConfirm() {
	s.checkIn("101", "Jane Doe")
	s.now = s.now.Add(60 * time.Hour)

	bill := s.preview("101", dto.CheckoutRequest{TaxPercent: "10", DiscountPercent: "0"})
	s.Equal(int64(3), bill.Nights)
	s.Equal("3600.00", bill.Subtotal)
	s.Equal("360.00", bill.TaxAmount)
	s.Equal("3960.00", bill.Total)
	s.Contains(bill.Receipt, "Total payable: 3960.00")

	// preview does not change the room
	w := s.do(http.MethodGet, "/api/v1/rooms/101", nil)
	s.Contains(w.Body.String(), "OCCUPIED")

	w = s.do(http.MethodPost, "/api/v1/rooms/101/checkout/confirm", bill.Bill)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var outcome dto.CheckoutOutcomeResponse
	s.decode(w, &outcome)
	s.Equal(dto.OutcomeCheckedOut, outcome.Status)
	s.Equal("3960.00", outcome.Total)
	s.Require().NotNil(outcome.Room)
	s.Equal("VACANT", outcome.Room.Status)
	s.Equal("2024-01-13 02:30", outcome.Room.CheckOut)

	w = s.do(http.MethodPost, "/api/v1/rooms/101/checkout/confirm", bill.Bill)
	s.Equal(http.StatusConflict, w.Code)
	s.decode(w, &outcome)
	s.Equal(dto.OutcomeAlreadyVacant, outcome.Status)
}

func (s *HandlerTestSuite) TestCheckout_PreviewUsesDefaults() {
	s.checkIn("102", "Jane Doe")

	bill := s.preview("102", nil)
	s.Equal(int64(1), bill.Nights)
	s.Equal("1320.00", bill.Total)
}

func (s *HandlerTestSuite) TestCheckout_PreviewVacant() {
	w := s.do(http.MethodPost, "/api/v1/rooms/201/checkout/preview", nil)
	s.Require().Equal(http.StatusConflict, w.Code)

	var outcome dto.CheckoutOutcomeResponse
	s.decode(w, &outcome)
	s.Equal(dto.OutcomeAlreadyVacant, outcome.Status)
}

func (s *HandlerTestSuite) TestCheckout_StaleBill() {
	s.checkIn("201", "Jane Doe")
	stale := s.preview("201", nil)

	w := s.do(http.MethodPost, "/api/v1/rooms/201/checkout/confirm", stale.Bill)
	s.Require().Equal(http.StatusOK, w.Code)

	s.now = s.now.Add(time.Hour)
	s.checkIn("201", "John Roe")

	w = s.do(http.MethodPost, "/api/v1/rooms/201/checkout/confirm", stale.Bill)
	s.Require().Equal(http.StatusConflict, w.Code)

	var outcome dto.CheckoutOutcomeResponse
	s.decode(w, &outcome)
	s.Equal(dto.OutcomeStaleBill, outcome.Status)

	w = s.do(http.MethodGet, "/api/v1/rooms/201", nil)
	s.Contains(w.Body.String(), "John Roe")
}

func (s *HandlerTestSuite) TestCheckout_ConfirmWrongRoom() {
	s.checkIn("101", "Jane Doe")
	bill := s.preview("101", nil)

	w := s.do(http.MethodPost, "/api/v1/rooms/102/checkout/confirm", bill.Bill)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCheckout_Cancel() {
	s.checkIn("301", "Jane Doe")
	s.preview("301", nil)

	w := s.do(http.MethodPost, "/api/v1/rooms/301/checkout/cancel", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var outcome dto.CheckoutOutcomeResponse
	s.decode(w, &outcome)
	s.Equal(dto.OutcomeCancelled, outcome.Status)

	w = s.do(http.MethodGet, "/api/v1/rooms/301", nil)
	s.Contains(w.Body.String(), "OCCUPIED")
}

func (s *HandlerTestSuite) TestCheckout_ConfirmIgnoresClientTimeAndTotal() {
	w := s.do(http.MethodPost, "/api/v1/rooms", dto.CreateRoomRequest{RoomNumber: "103", RoomType: "Single", PricePerNight: "1200"})
	s.Require().Equal(http.StatusCreated, w.Code)

	tests := []struct {
		room   string
		mutate func(body map[string]any)
	}{
		{"101", func(body map[string]any) { delete(body, "checkOutAt") }},
		{"102", func(body map[string]any) { body["checkOutAt"] = "2020-01-01T00:00:00Z" }},
		{"103", func(body map[string]any) { body["checkOutAt"] = "2030-01-01T00:00:00Z" }},
	}
	for _, tt := range tests {
		s.checkIn(tt.room, "Jane Doe")
	}
	s.now = s.now.Add(60 * time.Hour)

	for _, tt := range tests {
		s.Run(tt.room, func() {
			bill := s.preview(tt.room, nil)
			raw, err := json.Marshal(bill.Bill)
			s.Require().NoError(err)
			var body map[string]any
			s.Require().NoError(json.Unmarshal(raw, &body))
			tt.mutate(body)
			body["total"] = "0"
			body["nights"] = 0

			w := s.do(http.MethodPost, "/api/v1/rooms/"+tt.room+"/checkout/confirm", body)
			s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

			var outcome dto.CheckoutOutcomeResponse
			s.decode(w, &outcome)
			s.Equal(dto.OutcomeCheckedOut, outcome.Status)
			s.Equal("3960.00", outcome.Total)
			s.Require().NotNil(outcome.Room)
			s.Equal("2024-01-13 02:30", outcome.Room.CheckOut)
		})
	}
}
