package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/utils/matching"
	"github.com/shopspring/decimal"
)

// suggestionThreshold is the minimum similarity for a room number to be offered
// as a "did you mean" on a failed lookup.
const suggestionThreshold = 0.6

// roomService is the front desk ledger: rooms in insertion order plus an index by
// case-folded room number. The index points at the first room with a given key.
type roomService struct {
	BaseService
	store portsrepo.RoomStore
	now   func() time.Time

	mu    sync.Mutex
	rooms []*domain.Room
	index map[string]*domain.Room
}

// ServiceOption is a functional option for configuring the room service
type ServiceOption func(*roomService)

// WithClock replaces time.Now as the source of check-in and checkout moments.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *roomService) {
		s.now = now
	}
}

// WithRooms starts the ledger with rooms instead of empty.
func WithRooms(rooms []domain.Room) ServiceOption {
	return func(s *roomService) {
		s.replace(rooms)
	}
}

// NewRoomService creates an empty ledger persisted through store.
func NewRoomService(store portsrepo.RoomStore, options ...ServiceOption) portssvc.RoomSvcFacade {
	svc := &roomService{
		store: store,
		now:   time.Now,
		index: make(map[string]*domain.Room),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure roomService implements the RoomSvcFacade interface
var _ portssvc.RoomSvcFacade = (*roomService)(nil)

func (s *roomService) AddRoom(ctx context.Context, roomNumber, roomType, pricePerNight string) (domain.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	roomType = strings.TrimSpace(roomType)
	pricePerNight = strings.TrimSpace(pricePerNight)

	if roomNumber == "" || roomType == "" || pricePerNight == "" {
		return domain.Room{}, fmt.Errorf("room number, type and price are required: %w", apperrors.ErrValidation)
	}
	price, err := decimal.NewFromString(pricePerNight)
	if err != nil {
		return domain.Room{}, fmt.Errorf("invalid price %q: %w", pricePerNight, apperrors.ErrValidation)
	}
	if price.IsNegative() {
		return domain.Room{}, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.NormalizeRoomNumber(roomNumber)
	if _, exists := s.index[key]; exists {
		s.LogWarn(ctx, "Attempted to add duplicate room", slog.String("room_number", roomNumber))
		return domain.Room{}, fmt.Errorf("room %s: %w", roomNumber, apperrors.ErrDuplicate)
	}

	room := domain.NewRoom(roomNumber, roomType, price)
	s.append(room)

	s.LogInfo(ctx, "Room added",
		slog.String("room_number", roomNumber),
		slog.String("room_type", roomType),
		slog.String("price", price.String()))
	return room.Clone(), nil
}

func (s *roomService) CheckIn(ctx context.Context, roomNumber, guest string) (domain.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	guest = strings.TrimSpace(guest)
	if roomNumber == "" || guest == "" {
		return domain.Room{}, fmt.Errorf("room number and guest name are required: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.lookup(roomNumber)
	if err != nil {
		return domain.Room{}, err
	}
	if room.IsOccupied() {
		return domain.Room{}, &apperrors.OccupiedError{RoomNumber: room.Number, Guest: room.GuestName()}
	}

	room.CheckIn(guest, domain.NewStamp(s.now()))

	s.LogInfo(ctx, "Guest checked in",
		slog.String("room_number", room.Number),
		slog.String("guest", guest),
		slog.String("checked_in_at", room.CheckedInAt().String()))
	return room.Clone(), nil
}

func (s *roomService) FindByRoomNumber(ctx context.Context, roomNumber string) (domain.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.index[domain.NormalizeRoomNumber(roomNumber)]
	if !ok {
		return domain.Room{}, false
	}
	return room.Clone(), true
}

func (s *roomService) Search(ctx context.Context, query string) []domain.Room {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r.Matches(q) {
			result = append(result, r.Clone())
		}
	}
	return result
}

func (s *roomService) ListAll(ctx context.Context) []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *roomService) SuggestRoomNumbers(ctx context.Context, roomNumber string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggest(roomNumber)
}

// lookup resolves a room for mutation. The caller holds s.mu.
func (s *roomService) lookup(roomNumber string) (*domain.Room, error) {
	room, ok := s.index[domain.NormalizeRoomNumber(roomNumber)]
	if ok {
		return room, nil
	}
	if hints := s.suggest(roomNumber); len(hints) > 0 {
		return nil, fmt.Errorf("room %s (did you mean %s?): %w", roomNumber, strings.Join(hints, ", "), apperrors.ErrNotFound)
	}
	return nil, fmt.Errorf("room %s: %w", roomNumber, apperrors.ErrNotFound)
}

func (s *roomService) suggest(roomNumber string) []string {
	numbers := make([]string, len(s.rooms))
	for i, r := range s.rooms {
		numbers[i] = r.Number
	}
	return matching.Closest(strings.TrimSpace(roomNumber), numbers, suggestionThreshold, matching.DefaultMaxSuggestions)
}

func (s *roomService) append(room domain.Room) {
	r := room.Clone()
	s.rooms = append(s.rooms, &r)
	if _, exists := s.index[r.Key()]; !exists {
		s.index[r.Key()] = &r
	}
}

func (s *roomService) replace(rooms []domain.Room) {
	s.rooms = make([]*domain.Room, 0, len(rooms))
	s.index = make(map[string]*domain.Room, len(rooms))
	for _, r := range rooms {
		s.append(r)
	}
}

func (s *roomService) snapshot() []domain.Room {
	out := make([]domain.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = r.Clone()
	}
	return out
}
