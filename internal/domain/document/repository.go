package document

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines document metadata access
type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates document repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	query := `
		INSERT INTO documents (id, booking_id, original_name, storage_key, content_type, size, created_at)
		VALUES (:id, :booking_id, :original_name, :storage_key, :content_type, :size, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, d)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	var d Document
	err := r.db.GetContext(ctx, &d, `SELECT * FROM documents WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*Document, error) {
	docs := []*Document{}
	err := r.db.SelectContext(ctx, &docs, `
		SELECT * FROM documents
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`, bookingID)
	return docs, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return err
}
