package blockdate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	blocks map[string]*Block
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{blocks: map[string]*Block{}}
}

func (f *fakeRepo) Create(ctx context.Context, block *Block) error {
	if f.err != nil {
		return f.err
	}
	key := block.Date.Format("2006-01-02")
	if _, exists := f.blocks[key]; exists {
		return nil // ON CONFLICT DO NOTHING
	}
	f.blocks[key] = block
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, date time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := date.Format("2006-01-02")
	if _, exists := f.blocks[key]; !exists {
		return false, nil
	}
	delete(f.blocks, key)
	return true, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Block, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*Block
	for _, b := range f.blocks {
		out = append(out, b)
	}
	return out, nil
}

func TestService_Block_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	day := time.Date(2026, 1, 20, 14, 30, 0, 0, time.Local)

	if _, err := svc.Block(context.Background(), day, "maintenance"); err != nil {
		t.Fatalf("first block failed: %v", err)
	}
	if _, err := svc.Block(context.Background(), day, "different reason"); err != nil {
		t.Fatalf("re-block failed: %v", err)
	}

	if len(repo.blocks) != 1 {
		t.Errorf("expected one row per date, got %d", len(repo.blocks))
	}
	// Time component must be normalized away
	stored := repo.blocks["2026-01-20"]
	if stored == nil {
		t.Fatal("block stored under wrong date key")
	}
	if h := stored.Date.Hour(); h != 0 {
		t.Errorf("date not normalized, hour = %d", h)
	}
	if stored.Reason.String != "maintenance" {
		t.Errorf("original reason overwritten: %q", stored.Reason.String)
	}
}

func TestService_Unblock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	day := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Block(context.Background(), day, ""); err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if err := svc.Unblock(context.Background(), day); err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	if err := svc.Unblock(context.Background(), day); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestService_ListBlockedDates(t *testing.T) {
	repo := newFakeRepo()
	repo.blocks["2026-01-20"] = &Block{
		Date:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		Reason: sql.NullString{String: "maintenance", Valid: true},
	}
	svc := NewService(repo)

	dates, err := svc.ListBlockedDates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || dates[0].Reason != "maintenance" {
		t.Errorf("unexpected block source output: %+v", dates)
	}
}

func TestService_ListBlockedDates_PropagatesError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo)

	if _, err := svc.ListBlockedDates(context.Background()); err == nil {
		t.Fatal("expected error to propagate")
	}
}
