package inquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines inquiry data access
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Inquiry, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	MarkConverted(ctx context.Context, id uuid.UUID, bookingID uuid.UUID) error
	ListOpenRanges(ctx context.Context) ([]*Inquiry, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates inquiry repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inq *Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, guest_name, guest_email, guest_phone, party_size,
			check_in, check_out, message, status,
			ip_address, user_agent, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		inq.ID, inq.GuestName, inq.GuestEmail, inq.GuestPhone, inq.PartySize,
		inq.CheckIn, inq.CheckOut, inq.Message, inq.Status,
		inq.IPAddress, inq.UserAgent, inq.CreatedAt, inq.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	var inq Inquiry
	err := r.db.GetContext(ctx, &inq, `SELECT * FROM inquiries WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inq, nil
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Inquiry, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM inquiries" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM inquiries %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var inquiries []*Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query, args...); err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE inquiries SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *repository) MarkConverted(ctx context.Context, id uuid.UUID, bookingID uuid.UUID) error {
	query := `
		UPDATE inquiries SET
			status = 'converted', booking_id = $2, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, bookingID)
	return err
}

func (r *repository) ListOpenRanges(ctx context.Context) ([]*Inquiry, error) {
	query := `
		SELECT * FROM inquiries
		WHERE status IN ('new', 'contacted')
		ORDER BY check_in ASC
	`
	var inquiries []*Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	query := `SELECT status, COUNT(*) as count FROM inquiries GROUP BY status`

	type row struct {
		Status Status `db:"status"`
		Count  int    `db:"count"`
	}

	var rows []row
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	result := make(map[Status]int)
	for _, rw := range rows {
		result[rw.Status] = rw.Count
	}
	return result, nil
}
