package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DemoRooms is the inventory a fresh install starts with.
func DemoRooms() []domain.Room {
	return []domain.Room{
		domain.NewRoom("101", "Single", decimal.NewFromInt(1200)),
		domain.NewRoom("102", "Single", decimal.NewFromInt(1200)),
		domain.NewRoom("201", "Double", decimal.NewFromInt(1800)),
		domain.NewRoom("301", "Deluxe", decimal.NewFromInt(3000)),
	}
}

func (s *roomService) Save(ctx context.Context) error {
	s.mu.Lock()
	rooms := s.snapshot()
	s.mu.Unlock()

	if err := s.store.SaveRooms(ctx, rooms); err != nil {
		s.LogError(ctx, err, "Failed to save ledger")
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	s.LogInfo(ctx, "Ledger saved", slog.Int("rooms", len(rooms)))
	return nil
}

func (s *roomService) Reload(ctx context.Context) error {
	rooms, err := s.store.LoadRooms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger, keeping current rooms")
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	s.mu.Lock()
	s.replace(rooms)
	s.mu.Unlock()

	s.LogInfo(ctx, "Ledger loaded", slog.Int("rooms", len(rooms)))
	return nil
}

func (s *roomService) LoadOrSeed(ctx context.Context, seed []domain.Room) error {
	if err := s.Reload(ctx); err != nil {
		return err
	}
	if len(seed) == 0 || s.store.Exists(ctx) {
		return nil
	}

	s.mu.Lock()
	empty := len(s.rooms) == 0
	if empty {
		s.replace(seed)
	}
	s.mu.Unlock()

	if empty {
		s.LogInfo(ctx, "No ledger file yet, starting with demo rooms", slog.Int("rooms", len(seed)))
	}
	return nil
}

func (s *roomService) Seed(ctx context.Context, rooms []domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(rooms)
}
