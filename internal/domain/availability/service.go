package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// BlockSource lists every admin-blocked date.
type BlockSource interface {
	ListBlockedDates(ctx context.Context) ([]BlockedDate, error)
}

// StaySource lists occupied stay ranges from one record collection
// (confirmed bookings, pending bookings, open inquiries...). Name is
// used for logging and error context only.
type StaySource interface {
	Name() string
	ListStayRanges(ctx context.Context) ([]StayRange, error)
}

// Service computes availability from fresh store reads on every query.
// Which stay collections count as occupying is decided by the caller
// when wiring the sources, not hard-coded here.
type Service struct {
	blocks  BlockSource
	stays   []StaySource
	timeout time.Duration
}

// NewService creates availability service
func NewService(blocks BlockSource, stays []StaySource, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{blocks: blocks, stays: stays, timeout: timeout}
}

// UnavailableDates fetches all blocks and stay ranges under one bounded
// timeout and returns their union. A failed fetch of any source aborts
// with ErrSourceUnavailable: returning a partial set would make booked
// dates falsely appear available.
func (s *Service) UnavailableDates(ctx context.Context) (DateSet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	blocks, err := s.blocks.ListBlockedDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: blocked dates: %v", ErrSourceUnavailable, err)
	}

	var ranges []StayRange
	for _, src := range s.stays {
		rs, err := src.ListStayRanges(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, src.Name(), err)
		}
		ranges = append(ranges, rs...)
	}

	logSkipped(blocks, ranges)

	return UnavailableDates(blocks, ranges), nil
}

// CheckRange recomputes the unavailable set and validates the candidate
// stay against it. Returns the conflicting dates (empty == available).
func (s *Service) CheckRange(ctx context.Context, checkIn, checkOut time.Time) ([]string, error) {
	set, err := s.UnavailableDates(ctx)
	if err != nil {
		return nil, err
	}
	return CheckRange(checkIn, checkOut, set)
}

// logSkipped surfaces malformed rows that the pure computation silently
// tolerates, so they can be cleaned up.
func logSkipped(blocks []BlockedDate, ranges []StayRange) {
	skipped := 0
	for _, b := range blocks {
		if b.Date.IsZero() {
			skipped++
		}
	}
	for _, r := range ranges {
		if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
			skipped++
		}
	}
	if skipped > 0 {
		log.Warn().Int("rows", skipped).Msg("Skipped malformed availability records")
	}
}
