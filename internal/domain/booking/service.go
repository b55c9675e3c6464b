package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/domain/availability"
	"github.com/villaserena/villa-api/internal/domain/inquiry"
)

// EventPublisher pushes dashboard events; best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
}

// Service handles booking business logic
type Service struct {
	repo       Repository
	inquirySvc *inquiry.Service
	events     EventPublisher
}

// NewService creates booking service
func NewService(repo Repository, inquirySvc *inquiry.Service, events EventPublisher) *Service {
	return &Service{repo: repo, inquirySvc: inquirySvc, events: events}
}

// Create validates the requested stay and persists it atomically with
// the availability check. On conflict the caller receives the exact
// dates that are taken.
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	return s.create(ctx, req, uuid.NullUUID{})
}

func (s *Service) create(ctx context.Context, req *CreateBookingRequest, inquiryID uuid.NullUUID) (*Booking, error) {
	checkIn, _ := time.Parse(availability.DayLayout, req.CheckIn)
	checkOut, _ := time.Parse(availability.DayLayout, req.CheckOut)
	if !availability.Day(checkOut).After(availability.Day(checkIn)) {
		return nil, ErrInvalidDates
	}

	now := time.Now()
	b := &Booking{
		ID:            uuid.New(),
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		GuestPhone:    req.GuestPhone,
		PartySize:     req.PartySize,
		CheckIn:       availability.Day(checkIn),
		CheckOut:      availability.Day(checkOut),
		Status:        StatusPending,
		PaymentStatus: PaymentUnpaid,
		Currency:      req.Currency,
		Notes:         sql.NullString{String: req.Notes, Valid: req.Notes != ""},
		InquiryID:     inquiryID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if b.Currency == "" {
		b.Currency = "EUR"
	}
	if req.TotalAmount > 0 {
		b.TotalAmount = sql.NullInt64{Int64: req.TotalAmount, Valid: true}
	}

	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ctx, "booking_created", map[string]interface{}{
			"booking_id": b.ID,
			"guest_name": b.GuestName,
			"check_in":   b.CheckIn.Format(availability.DayLayout),
			"check_out":  b.CheckOut.Format(availability.DayLayout),
		})
	}

	return b, nil
}

// ConvertInquiry creates a booking from an existing inquiry and marks
// the inquiry converted. The booking insert carries the same atomic
// availability check as a direct creation.
func (s *Service) ConvertInquiry(ctx context.Context, inquiryID uuid.UUID, req *ConvertInquiryRequest) (*Booking, error) {
	inq, err := s.inquirySvc.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq.IsConverted() {
		return nil, inquiry.ErrAlreadyConverted
	}

	create := &CreateBookingRequest{
		GuestName:   inq.GuestName,
		GuestEmail:  inq.GuestEmail,
		GuestPhone:  inq.GuestPhone,
		PartySize:   inq.PartySize,
		CheckIn:     inq.CheckIn.Format(availability.DayLayout),
		CheckOut:    inq.CheckOut.Format(availability.DayLayout),
		TotalAmount: req.TotalAmount,
		Currency:    req.Currency,
		Notes:       req.Notes,
	}

	b, err := s.create(ctx, create, uuid.NullUUID{UUID: inquiryID, Valid: true})
	if err != nil {
		return nil, err
	}

	if err := s.inquirySvc.MarkConverted(ctx, inquiryID, b.ID); err != nil {
		// Booking exists either way; the link is advisory
		return b, nil
	}

	return b, nil
}

// GetByID returns booking by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// List returns bookings with optional status filter
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// Confirm moves a pending booking to confirmed.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusConfirmed); err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, "booking_updated", map[string]interface{}{
			"booking_id": id,
			"status":     string(StatusConfirmed),
		})
	}
	return nil
}

// Cancel frees the booking's dates.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, "booking_updated", map[string]interface{}{
			"booking_id": id,
			"status":     string(StatusCancelled),
		})
	}
	return nil
}

// UpdatePaymentStatus records an off-platform payment event.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, next PaymentStatus) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !paymentTransitionAllowed(b.PaymentStatus, next) {
		return ErrInvalidPayment
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, next); err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, "booking_updated", map[string]interface{}{
			"booking_id":     id,
			"payment_status": string(next),
		})
	}
	return nil
}

// UpdateNotes replaces the admin notes on a booking.
func (s *Service) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateNotes(ctx, id, notes)
}

// paymentTransitionAllowed: money only moves forward, refunds only out
// of a paid state.
func paymentTransitionAllowed(from, to PaymentStatus) bool {
	switch from {
	case PaymentUnpaid:
		return to == PaymentDepositPaid || to == PaymentPaid
	case PaymentDepositPaid:
		return to == PaymentPaid || to == PaymentRefunded
	case PaymentPaid:
		return to == PaymentRefunded
	default:
		return false
	}
}

// Name implements availability.StaySource.
func (s *Service) Name() string { return "bookings" }

// ListStayRanges implements availability.StaySource: every
// non-cancelled booking occupies its nights, pending included.
func (s *Service) ListStayRanges(ctx context.Context) ([]availability.StayRange, error) {
	occupied, err := s.repo.ListOccupiedRanges(ctx)
	if err != nil {
		return nil, err
	}

	ranges := make([]availability.StayRange, 0, len(occupied))
	for _, b := range occupied {
		ranges = append(ranges, availability.StayRange{
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
		})
	}
	return ranges, nil
}
