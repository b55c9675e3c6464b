package blockdate

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines blocked-date data access
type Repository interface {
	Create(ctx context.Context, block *Block) error
	Delete(ctx context.Context, date time.Time) (bool, error)
	List(ctx context.Context) ([]*Block, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates blocked-date repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, block *Block) error {
	// Re-blocking an already blocked date keeps the original row
	query := `
		INSERT INTO blocked_dates (date, reason, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, block.Date, block.Reason, block.CreatedAt)
	return err
}

func (r *repository) Delete(ctx context.Context, date time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blocked_dates WHERE date = $1`, date)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) List(ctx context.Context) ([]*Block, error) {
	var blocks []*Block
	query := `SELECT date, reason, created_at FROM blocked_dates ORDER BY date ASC`
	if err := r.db.SelectContext(ctx, &blocks, query); err != nil {
		return nil, err
	}
	return blocks, nil
}
