package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/core/services"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/SscSPs/hotel_management_app/internal/handlers"
	"github.com/SscSPs/hotel_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RoomStore ---
type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) LoadRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomStore) SaveRooms(ctx context.Context, rooms []domain.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockRoomStore) Exists(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// --- Mock ReportExporter ---
type MockReportExporter struct {
	mock.Mock
}

func (m *MockReportExporter) ExportRooms(ctx context.Context, w io.Writer, rooms []domain.Room) error {
	args := m.Called(ctx, w, rooms)
	return args.Error(0)
}

var _ portssvc.ReportExporter = (*MockReportExporter)(nil)

type HandlerTestSuite struct {
	suite.Suite
	store    *MockRoomStore
	exporter *MockReportExporter
	now      time.Time
	router   *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.store = new(MockRoomStore)
	s.exporter = new(MockReportExporter)
	s.now = time.Date(2024, 1, 10, 14, 30, 0, 0, time.Local)

	cfg := &config.Config{
		DataFile:               "bookings.csv",
		DefaultTaxPercent:      decimal.NewFromInt(10),
		DefaultDiscountPercent: decimal.Zero,
		RateLimit:              "1000-M",
		CORSAllowedOrigins:     []string{"*"},
		IsProduction:           true,
	}
	container := services.NewServiceContainer(s.store, s.exporter,
		services.WithClock(func() time.Time { return s.now }),
		services.WithRooms(services.DemoRooms()),
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router, err := handlers.NewRouter(cfg, logger, container)
	s.Require().NoError(err)
	s.router = router
}

func (s *HandlerTestSuite) TearDownTest() {
	s.store.AssertExpectations(s.T())
	s.exporter.AssertExpectations(s.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestListRooms() {
	w := s.do(http.MethodGet, "/api/v1/rooms", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var rooms []dto.RoomResponse
	s.decode(w, &rooms)
	s.Require().Len(rooms, 4)
	s.Equal("101", rooms[0].RoomNumber)
	s.Equal("1200.00", rooms[0].PricePerNight)
	s.Equal("VACANT", rooms[0].Status)
}

func (s *HandlerTestSuite) TestListRooms_Search() {
	s.do(http.MethodPost, "/api/v1/rooms/301/checkin", dto.CheckInRequest{GuestName: "Jane Doe"})

	w := s.do(http.MethodGet, "/api/v1/rooms?q=jane", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var rooms []dto.RoomResponse
	s.decode(w, &rooms)
	s.Require().Len(rooms, 1)
	s.Equal("301", rooms[0].RoomNumber)
	s.Equal("Jane Doe", rooms[0].GuestName)
}

func (s *HandlerTestSuite) TestCreateRoom() {
	w := s.do(http.MethodPost, "/api/v1/rooms", dto.CreateRoomRequest{RoomNumber: "401", RoomType: "Suite", PricePerNight: "4500.5"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var room dto.RoomResponse
	s.decode(w, &room)
	s.Equal("401", room.RoomNumber)
	s.Equal("4500.50", room.PricePerNight)
	s.Equal("VACANT", room.Status)
}

func (s *HandlerTestSuite) TestCreateRoom_Duplicate() {
	w := s.do(http.MethodPost, "/api/v1/rooms", dto.CreateRoomRequest{RoomNumber: "101", RoomType: "Suite", PricePerNight: "10"})
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestCreateRoom_InvalidInput() {
	w := s.do(http.MethodPost, "/api/v1/rooms", map[string]string{"roomNumber": "401"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/rooms", dto.CreateRoomRequest{RoomNumber: "401", RoomType: "Suite", PricePerNight: "cheap"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetRoom() {
	w := s.do(http.MethodGet, "/api/v1/rooms/201", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var room dto.RoomResponse
	s.decode(w, &room)
	s.Equal("Double", room.RoomType)
}

func (s *HandlerTestSuite) TestGetRoom_NotFoundSuggests() {
	w := s.do(http.MethodGet, "/api/v1/rooms/10l", nil)
	s.Require().Equal(http.StatusNotFound, w.Code)

	var resp dto.RoomNotFoundResponse
	s.decode(w, &resp)
	s.Contains(resp.Suggestions, "101")
}

func (s *HandlerTestSuite) TestCheckIn() {
	w := s.do(http.MethodPost, "/api/v1/rooms/102/checkin", dto.CheckInRequest{GuestName: "Jane Doe"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var room dto.RoomResponse
	s.decode(w, &room)
	s.Equal("OCCUPIED", room.Status)
	s.Equal("Jane Doe", room.GuestName)
	s.Equal("2024-01-10 14:30", room.CheckIn)

	w = s.do(http.MethodPost, "/api/v1/rooms/102/checkin", dto.CheckInRequest{GuestName: "John Roe"})
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "Jane Doe")
}

func (s *HandlerTestSuite) TestCheckIn_Errors() {
	w := s.do(http.MethodPost, "/api/v1/rooms/999/checkin", dto.CheckInRequest{GuestName: "Jane Doe"})
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/rooms/101/checkin", map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestLedgerSave() {
	s.store.On("SaveRooms", mock.Anything, mock.AnythingOfType("[]domain.Room")).Return(nil).Once()

	w := s.do(http.MethodPost, "/api/v1/ledger/save", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	s.decode(w, &resp)
	s.Equal(4, resp.Rooms)
	s.Equal("bookings.csv", resp.Path)
}

func (s *HandlerTestSuite) TestLedgerSave_IOError() {
	ioErr := apperrors.NewIOError("save", "bookings.csv", errors.New("disk full"))
	s.store.On("SaveRooms", mock.Anything, mock.Anything).Return(ioErr).Once()

	w := s.do(http.MethodPost, "/api/v1/ledger/save", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *HandlerTestSuite) TestLedgerLoad() {
	rooms := []domain.Room{domain.NewRoom("501", "Single", decimal.NewFromInt(900))}
	s.store.On("LoadRooms", mock.Anything).Return(rooms, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/ledger/load", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	s.decode(w, &resp)
	s.Equal(1, resp.Rooms)

	w = s.do(http.MethodGet, "/api/v1/rooms/501", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestLedgerLoad_KeepsRoomsOnError() {
	s.store.On("LoadRooms", mock.Anything).Return(nil, apperrors.NewIOError("load", "bookings.csv", errors.New("permission denied"))).Once()

	w := s.do(http.MethodPost, "/api/v1/ledger/load", nil)
	s.Equal(http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodGet, "/api/v1/rooms/101", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestLedgerExport() {
	s.exporter.On("ExportRooms", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.Room")).
		Run(func(args mock.Arguments) {
			_, _ = args.Get(1).(io.Writer).Write([]byte("PK"))
		}).
		Return(nil).Once()

	w := s.do(http.MethodGet, "/api/v1/ledger/export", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "rooms.xlsx")
	s.Equal("PK", w.Body.String())
}

func (s *HandlerTestSuite) TestLedgerExport_Error() {
	s.exporter.On("ExportRooms", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	w := s.do(http.MethodGet, "/api/v1/ledger/export", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
}
