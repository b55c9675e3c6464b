package blockdate

import (
	"time"

	"github.com/villaserena/villa-api/internal/domain/availability"
)

// CreateBlockRequest for blocking a date
type CreateBlockRequest struct {
	Date   string `json:"date" validate:"required,iso_date"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// BlockResponse for API responses
type BlockResponse struct {
	Date      string `json:"date"`
	Reason    string `json:"reason,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Block) *BlockResponse {
	resp := &BlockResponse{
		Date:      b.Date.Format(availability.DayLayout),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.Reason.Valid {
		resp.Reason = b.Reason.String
	}
	return resp
}
