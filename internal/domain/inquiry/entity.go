package inquiry

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents inquiry lifecycle state
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

// Inquiry is a guest stay request submitted through the public site.
// Open inquiries may count as occupying stays for availability when the
// site is configured that way.
type Inquiry struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	GuestName  string         `db:"guest_name" json:"guest_name"`
	GuestEmail string         `db:"guest_email" json:"guest_email"`
	GuestPhone string         `db:"guest_phone" json:"guest_phone"`
	PartySize  int            `db:"party_size" json:"party_size"`
	CheckIn    time.Time      `db:"check_in" json:"check_in"`
	CheckOut   time.Time      `db:"check_out" json:"check_out"`
	Message    sql.NullString `db:"message" json:"message,omitempty"`
	Status     Status         `db:"status" json:"status"`
	BookingID  uuid.NullUUID  `db:"booking_id" json:"booking_id,omitempty"`
	IPAddress  sql.NullString `db:"ip_address" json:"-"`
	UserAgent  sql.NullString `db:"user_agent" json:"-"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// IsOpen reports whether the inquiry still represents a possible stay.
func (i *Inquiry) IsOpen() bool {
	return i.Status == StatusNew || i.Status == StatusContacted
}

// IsConverted reports whether the inquiry became a booking.
func (i *Inquiry) IsConverted() bool {
	return i.Status == StatusConverted
}
