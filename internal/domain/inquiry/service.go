package inquiry

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/domain/availability"
)

// EventPublisher pushes dashboard events; best-effort, never blocks the
// write path.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

// Service handles inquiry business logic
type Service struct {
	repo   Repository
	events EventPublisher
}

// NewService creates inquiry service
func NewService(repo Repository, events EventPublisher) *Service {
	return &Service{repo: repo, events: events}
}

// Submit creates a new guest inquiry (public endpoint). Dates are
// validated but availability is NOT enforced here: an inquiry is a
// conversation starter, the hard check happens at booking creation.
func (s *Service) Submit(ctx context.Context, req *CreateInquiryRequest, ip, userAgent string) (*Inquiry, error) {
	checkIn, _ := time.Parse(availability.DayLayout, req.CheckIn)
	checkOut, _ := time.Parse(availability.DayLayout, req.CheckOut)
	if !availability.Day(checkOut).After(availability.Day(checkIn)) {
		return nil, ErrInvalidDates
	}

	now := time.Now()
	inq := &Inquiry{
		ID:         uuid.New(),
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		PartySize:  req.PartySize,
		CheckIn:    availability.Day(checkIn),
		CheckOut:   availability.Day(checkOut),
		Message:    sql.NullString{String: req.Message, Valid: req.Message != ""},
		Status:     StatusNew,
		IPAddress:  sql.NullString{String: ip, Valid: ip != ""},
		UserAgent:  sql.NullString{String: userAgent, Valid: userAgent != ""},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ctx, "inquiry_created", map[string]interface{}{
			"inquiry_id": inq.ID,
			"guest_name": inq.GuestName,
			"check_in":   inq.CheckIn.Format(availability.DayLayout),
			"check_out":  inq.CheckOut.Format(availability.DayLayout),
		})
	}

	return inq, nil
}

// GetByID returns inquiry by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, ErrInquiryNotFound
	}
	return inq, nil
}

// List returns inquiries with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Inquiry, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves an inquiry through its lifecycle. Converted
// inquiries are final.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inq == nil {
		return ErrInquiryNotFound
	}
	if inq.IsConverted() {
		return ErrAlreadyConverted
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

// MarkConverted links an inquiry to the booking created from it.
func (s *Service) MarkConverted(ctx context.Context, id, bookingID uuid.UUID) error {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inq == nil {
		return ErrInquiryNotFound
	}
	if inq.IsConverted() {
		return ErrAlreadyConverted
	}

	return s.repo.MarkConverted(ctx, id, bookingID)
}

// GetStats returns inquiry counts by status
func (s *Service) GetStats(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}

// Name implements availability.StaySource.
func (s *Service) Name() string { return "inquiries" }

// ListStayRanges implements availability.StaySource: open inquiries
// count as occupying stays. Only wired in when the site is configured
// to over-block on unconfirmed interest.
func (s *Service) ListStayRanges(ctx context.Context) ([]availability.StayRange, error) {
	open, err := s.repo.ListOpenRanges(ctx)
	if err != nil {
		return nil, err
	}

	ranges := make([]availability.StayRange, 0, len(open))
	for _, inq := range open {
		ranges = append(ranges, availability.StayRange{
			CheckIn:  inq.CheckIn,
			CheckOut: inq.CheckOut,
		})
	}
	return ranges, nil
}
