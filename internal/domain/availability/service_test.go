package availability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeBlockSource struct {
	blocks []BlockedDate
	err    error
	calls  int
}

func (f *fakeBlockSource) ListBlockedDates(ctx context.Context) ([]BlockedDate, error) {
	f.calls++
	return f.blocks, f.err
}

type fakeStaySource struct {
	name   string
	ranges []StayRange
	err    error
}

func (f *fakeStaySource) Name() string { return f.name }
func (f *fakeStaySource) ListStayRanges(ctx context.Context) ([]StayRange, error) {
	return f.ranges, f.err
}

func TestService_UnavailableDates_MergesSources(t *testing.T) {
	blocks := &fakeBlockSource{blocks: []BlockedDate{{Date: date(t, "2026-01-20")}}}
	bookings := &fakeStaySource{name: "bookings", ranges: []StayRange{
		{CheckIn: date(t, "2026-01-18"), CheckOut: date(t, "2026-01-20")},
	}}
	inquiries := &fakeStaySource{name: "inquiries", ranges: []StayRange{
		{CheckIn: date(t, "2026-02-01"), CheckOut: date(t, "2026-02-03")},
	}}

	svc := NewService(blocks, []StaySource{bookings, inquiries}, time.Second)

	set, err := svc.UnavailableDates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, iso := range []string{"2026-01-18", "2026-01-19", "2026-01-20", "2026-02-01", "2026-02-02"} {
		if !set.Contains(iso) {
			t.Errorf("expected %s in unavailable set", iso)
		}
	}
	if set.Contains("2026-02-03") {
		t.Error("inquiry checkout day should be free")
	}
}

func TestService_UnavailableDates_BlockFetchFailureAborts(t *testing.T) {
	blocks := &fakeBlockSource{err: errors.New("connection refused")}
	svc := NewService(blocks, nil, time.Second)

	set, err := svc.UnavailableDates(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	// A partial (empty) result would make every date falsely available
	if set != nil {
		t.Errorf("expected nil set on fetch failure, got %v", set)
	}
}

func TestService_UnavailableDates_StayFetchFailureAborts(t *testing.T) {
	blocks := &fakeBlockSource{}
	bookings := &fakeStaySource{name: "bookings", err: errors.New("query timeout")}
	svc := NewService(blocks, []StaySource{bookings}, time.Second)

	_, err := svc.UnavailableDates(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestService_CheckRange_InvalidCandidate(t *testing.T) {
	svc := NewService(&fakeBlockSource{}, nil, time.Second)

	_, err := svc.CheckRange(context.Background(), date(t, "2026-03-05"), date(t, "2026-03-05"))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestService_CheckRange_RecomputesPerQuery(t *testing.T) {
	blocks := &fakeBlockSource{}
	svc := NewService(blocks, nil, time.Second)

	if _, err := svc.CheckRange(context.Background(), date(t, "2026-03-01"), date(t, "2026-03-03")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sources change between queries; the next check must see them
	blocks.blocks = []BlockedDate{{Date: date(t, "2026-03-02")}}

	conflicts, err := svc.CheckRange(context.Background(), date(t, "2026-03-01"), date(t, "2026-03-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0] != "2026-03-02" {
		t.Errorf("expected fresh block to conflict, got %v", conflicts)
	}
	if blocks.calls != 2 {
		t.Errorf("expected a fresh fetch per query, got %d calls", blocks.calls)
	}
}
