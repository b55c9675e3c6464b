package blockdate

import (
	"database/sql"
	"time"
)

// Block is a single admin-blocked calendar day, independent of any
// booking. At most one row exists per date.
type Block struct {
	Date      time.Time      `db:"date" json:"date"`
	Reason    sql.NullString `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
