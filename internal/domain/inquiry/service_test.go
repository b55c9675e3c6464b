package inquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeRepo struct {
	items   map[uuid.UUID]*Inquiry
	created *Inquiry
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*Inquiry{}}
}

func (f *fakeRepo) Create(ctx context.Context, inq *Inquiry) error {
	if f.err != nil {
		return f.err
	}
	f.created = inq
	f.items[inq.ID] = inq
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	return f.items[id], f.err
}

func (f *fakeRepo) List(ctx context.Context, status *Status, limit, offset int) ([]*Inquiry, int, error) {
	var out []*Inquiry
	for _, inq := range f.items {
		if status == nil || inq.Status == *status {
			out = append(out, inq)
		}
	}
	return out, len(out), f.err
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if inq, ok := f.items[id]; ok {
		inq.Status = status
	}
	return f.err
}

func (f *fakeRepo) MarkConverted(ctx context.Context, id uuid.UUID, bookingID uuid.UUID) error {
	if inq, ok := f.items[id]; ok {
		inq.Status = StatusConverted
		inq.BookingID = uuid.NullUUID{UUID: bookingID, Valid: true}
	}
	return f.err
}

func (f *fakeRepo) ListOpenRanges(ctx context.Context) ([]*Inquiry, error) {
	var out []*Inquiry
	for _, inq := range f.items {
		if inq.IsOpen() {
			out = append(out, inq)
		}
	}
	return out, f.err
}

func (f *fakeRepo) CountByStatus(ctx context.Context) (map[Status]int, error) {
	return map[Status]int{}, f.err
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(ctx context.Context, eventType string, data interface{}) {
	f.events = append(f.events, eventType)
}

func validRequest() *CreateInquiryRequest {
	return &CreateInquiryRequest{
		GuestName:  "Ana Petrova",
		GuestEmail: "ana@example.com",
		GuestPhone: "+381641234567",
		PartySize:  4,
		CheckIn:    "2026-07-10",
		CheckOut:   "2026-07-17",
		Message:    "Do you allow pets?",
	}
}

func TestService_Submit(t *testing.T) {
	repo := newFakeRepo()
	events := &fakePublisher{}
	svc := NewService(repo, events)

	inq, err := svc.Submit(context.Background(), validRequest(), "203.0.113.7", "test-agent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inq.Status != StatusNew {
		t.Errorf("status = %s, want new", inq.Status)
	}
	if repo.created == nil {
		t.Fatal("inquiry not persisted")
	}
	if got := repo.created.CheckIn.Format("2006-01-02"); got != "2026-07-10" {
		t.Errorf("check_in = %s", got)
	}
	if len(events.events) != 1 || events.events[0] != "inquiry_created" {
		t.Errorf("expected inquiry_created event, got %v", events.events)
	}
}

func TestService_Submit_InvalidDates(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	req := validRequest()
	req.CheckOut = req.CheckIn // degenerate: zero nights

	if _, err := svc.Submit(context.Background(), req, "", ""); !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}
}

func TestService_UpdateStatus_ConvertedIsFinal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	id := uuid.New()
	repo.items[id] = &Inquiry{ID: id, Status: StatusConverted}

	if err := svc.UpdateStatus(context.Background(), id, StatusClosed); !errors.Is(err, ErrAlreadyConverted) {
		t.Fatalf("expected ErrAlreadyConverted, got %v", err)
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	err := svc.UpdateStatus(context.Background(), uuid.New(), StatusContacted)
	if !errors.Is(err, ErrInquiryNotFound) {
		t.Fatalf("expected ErrInquiryNotFound, got %v", err)
	}
}

func TestService_ListStayRanges_OnlyOpenInquiries(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	day := func(iso string) time.Time {
		d, _ := time.Parse("2006-01-02", iso)
		return d
	}

	open := uuid.New()
	repo.items[open] = &Inquiry{
		ID: open, Status: StatusNew,
		CheckIn: day("2026-07-10"), CheckOut: day("2026-07-12"),
	}
	closed := uuid.New()
	repo.items[closed] = &Inquiry{
		ID: closed, Status: StatusClosed,
		CheckIn: day("2026-08-01"), CheckOut: day("2026-08-05"),
	}

	ranges, err := svc.ListStayRanges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 open range, got %d", len(ranges))
	}
	if got := ranges[0].CheckIn.Format("2006-01-02"); got != "2026-07-10" {
		t.Errorf("wrong range surfaced: %s", got)
	}
}
