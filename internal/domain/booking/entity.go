package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents booking lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus tracks what the guest has paid so far. Payment itself
// happens off-platform; this is bookkeeping only.
type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentPaid        PaymentStatus = "paid"
	PaymentRefunded    PaymentStatus = "refunded"
)

// Booking is a reserved stay: check-in inclusive, check-out exclusive.
type Booking struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	GuestName     string         `db:"guest_name" json:"guest_name"`
	GuestEmail    string         `db:"guest_email" json:"guest_email"`
	GuestPhone    string         `db:"guest_phone" json:"guest_phone"`
	PartySize     int            `db:"party_size" json:"party_size"`
	CheckIn       time.Time      `db:"check_in" json:"check_in"`
	CheckOut      time.Time      `db:"check_out" json:"check_out"`
	Status        Status         `db:"status" json:"status"`
	PaymentStatus PaymentStatus  `db:"payment_status" json:"payment_status"`
	TotalAmount   sql.NullInt64  `db:"total_amount" json:"total_amount,omitempty"` // minor units
	Currency      string         `db:"currency" json:"currency"`
	Notes         sql.NullString `db:"notes" json:"notes,omitempty"`
	InquiryID     uuid.NullUUID  `db:"inquiry_id" json:"inquiry_id,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Occupies reports whether the booking blocks its date range.
func (b *Booking) Occupies() bool {
	return b.Status != StatusCancelled
}
