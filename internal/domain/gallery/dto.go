package gallery

import (
	"time"

	"github.com/google/uuid"
)

// UpdateCaptionRequest for admin caption edits
type UpdateCaptionRequest struct {
	Caption string `json:"caption" validate:"max=500"`
}

// UpdateSortOrderRequest for reordering the gallery
type UpdateSortOrderRequest struct {
	SortOrder int `json:"sort_order" validate:"min=0"`
}

// PhotoResponse for API responses
type PhotoResponse struct {
	ID        uuid.UUID `json:"id"`
	Caption   string    `json:"caption,omitempty"`
	URL       string    `json:"url"`
	ThumbURL  string    `json:"thumb_url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	SortOrder int       `json:"sort_order"`
	CreatedAt string    `json:"created_at"`
}

// ToResponse converts entity to response with resolved URLs
func ToResponse(p *Photo, svc *Service) *PhotoResponse {
	resp := &PhotoResponse{
		ID:        p.ID,
		URL:       svc.URL(p),
		ThumbURL:  svc.ThumbURL(p),
		Width:     p.Width,
		Height:    p.Height,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Caption.Valid {
		resp.Caption = p.Caption.String
	}
	return resp
}
