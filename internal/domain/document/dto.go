package document

import (
	"time"

	"github.com/google/uuid"
)

// DocumentResponse for API responses
type DocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"booking_id"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(d *Document) *DocumentResponse {
	return &DocumentResponse{
		ID:           d.ID,
		BookingID:    d.BookingID,
		OriginalName: d.OriginalName,
		ContentType:  d.ContentType,
		Size:         d.Size,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}
