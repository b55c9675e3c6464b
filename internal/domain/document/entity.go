package document

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file attached to a booking: contracts, invoices,
// guest ID scans. Only admins see these.
type Document struct {
	ID           uuid.UUID `db:"id" json:"id"`
	BookingID    uuid.UUID `db:"booking_id" json:"booking_id"`
	OriginalName string    `db:"original_name" json:"original_name"`
	StorageKey   string    `db:"storage_key" json:"-"`
	ContentType  string    `db:"content_type" json:"content_type"`
	Size         int64     `db:"size" json:"size"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
