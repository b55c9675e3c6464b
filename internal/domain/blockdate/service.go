package blockdate

import (
	"context"
	"database/sql"
	"time"

	"github.com/villaserena/villa-api/internal/domain/availability"
)

// Service handles blocked-date business logic. It is also the block
// source for the availability engine.
type Service struct {
	repo Repository
}

// NewService creates blocked-date service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Block marks a single date unavailable. Blocking an already blocked
// date succeeds without changing the stored reason.
func (s *Service) Block(ctx context.Context, date time.Time, reason string) (*Block, error) {
	block := &Block{
		Date:      availability.Day(date),
		Reason:    sql.NullString{String: reason, Valid: reason != ""},
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

// Unblock removes a block.
func (s *Service) Unblock(ctx context.Context, date time.Time) error {
	deleted, err := s.repo.Delete(ctx, availability.Day(date))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlockNotFound
	}
	return nil
}

// List returns all blocks ordered by date.
func (s *Service) List(ctx context.Context) ([]*Block, error) {
	return s.repo.List(ctx)
}

// ListBlockedDates implements availability.BlockSource.
func (s *Service) ListBlockedDates(ctx context.Context) ([]availability.BlockedDate, error) {
	blocks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dates := make([]availability.BlockedDate, 0, len(blocks))
	for _, b := range blocks {
		dates = append(dates, availability.BlockedDate{
			Date:   b.Date,
			Reason: b.Reason.String,
		})
	}
	return dates, nil
}
