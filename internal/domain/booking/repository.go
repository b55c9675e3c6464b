package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/villaserena/villa-api/internal/domain/availability"
)

// Repository defines booking data access
type Repository interface {
	CreateIfAvailable(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
	ListOccupiedRanges(ctx context.Context) ([]*Booking, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateIfAvailable runs the availability check and the insert inside a
// single serializable transaction, so two concurrent submissions for
// overlapping dates cannot both commit. The losing writer gets either
// DatesUnavailableError (seen the winner's row) or ErrWriteConflict
// (serialization failure).
func (r *repository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Fresh snapshot of every source inside the transaction
	var blockRows []struct {
		Date time.Time `db:"date"`
	}
	err = tx.SelectContext(ctx, &blockRows, `
		SELECT date FROM blocked_dates
		WHERE date >= $1 AND date < $2
	`, b.CheckIn, b.CheckOut)
	if err != nil {
		return fmt.Errorf("fetching blocked dates: %w", err)
	}

	var stayRows []struct {
		CheckIn  time.Time `db:"check_in"`
		CheckOut time.Time `db:"check_out"`
	}
	err = tx.SelectContext(ctx, &stayRows, `
		SELECT check_in, check_out FROM bookings
		WHERE status <> 'cancelled' AND check_in < $2 AND check_out > $1
	`, b.CheckIn, b.CheckOut)
	if err != nil {
		return fmt.Errorf("fetching overlapping bookings: %w", err)
	}

	blocks := make([]availability.BlockedDate, 0, len(blockRows))
	for _, row := range blockRows {
		blocks = append(blocks, availability.BlockedDate{Date: row.Date})
	}
	ranges := make([]availability.StayRange, 0, len(stayRows))
	for _, row := range stayRows {
		ranges = append(ranges, availability.StayRange{CheckIn: row.CheckIn, CheckOut: row.CheckOut})
	}

	conflicts, err := availability.CheckRange(b.CheckIn, b.CheckOut, availability.UnavailableDates(blocks, ranges))
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &DatesUnavailableError{Dates: conflicts}
	}

	query := `
		INSERT INTO bookings (
			id, guest_name, guest_email, guest_phone, party_size,
			check_in, check_out, status, payment_status,
			total_amount, currency, notes, inquiry_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15
		)
	`
	_, err = tx.ExecContext(ctx, query,
		b.ID, b.GuestName, b.GuestEmail, b.GuestPhone, b.PartySize,
		b.CheckIn, b.CheckOut, b.Status, b.PaymentStatus,
		b.TotalAmount, b.Currency, b.Notes, b.InquiryID, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return mapTxError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapTxError(err)
	}
	return nil
}

// mapTxError turns Postgres serialization failures into a retryable
// conflict error.
func mapTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return ErrWriteConflict
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM bookings" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM bookings %s
		ORDER BY check_in DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *repository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	query := `UPDATE bookings SET notes = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, sql.NullString{String: notes, Valid: notes != ""})
	return err
}

func (r *repository) ListOccupiedRanges(ctx context.Context) ([]*Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE status <> 'cancelled'
		ORDER BY check_in ASC
	`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}
