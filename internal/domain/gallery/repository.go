package gallery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines gallery photo metadata access
type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*Photo, error)
	List(ctx context.Context) ([]*Photo, error)
	UpdateCaption(ctx context.Context, id uuid.UUID, caption sql.NullString) error
	UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates gallery repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO gallery_photos (id, caption, storage_key, thumb_key, content_type, width, height, sort_order, created_at)
		VALUES (:id, :caption, :storage_key, :thumb_key, :content_type, :width, :height, :sort_order, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Photo, error) {
	var p Photo
	err := r.db.GetContext(ctx, &p, `SELECT * FROM gallery_photos WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]*Photo, error) {
	photos := []*Photo{}
	err := r.db.SelectContext(ctx, &photos, `
		SELECT * FROM gallery_photos
		ORDER BY sort_order ASC, created_at DESC
	`)
	return photos, err
}

func (r *repository) UpdateCaption(ctx context.Context, id uuid.UUID, caption sql.NullString) error {
	_, err := r.db.ExecContext(ctx, `UPDATE gallery_photos SET caption = $2 WHERE id = $1`, id, caption)
	return err
}

func (r *repository) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE gallery_photos SET sort_order = $2 WHERE id = $1`, id, sortOrder)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM gallery_photos WHERE id = $1`, id)
	return err
}
