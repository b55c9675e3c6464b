package gallery

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Photo is a published gallery image with a stored original and a
// generated thumbnail.
type Photo struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Caption     sql.NullString `db:"caption" json:"caption,omitempty"`
	StorageKey  string         `db:"storage_key" json:"-"`
	ThumbKey    string         `db:"thumb_key" json:"-"`
	ContentType string         `db:"content_type" json:"content_type"`
	Width       int            `db:"width" json:"width"`
	Height      int            `db:"height" json:"height"`
	SortOrder   int            `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
