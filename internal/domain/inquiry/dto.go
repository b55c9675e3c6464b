package inquiry

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/domain/availability"
	"github.com/villaserena/villa-api/internal/pkg/whatsapp"
)

// CreateInquiryRequest for the public inquiry form
type CreateInquiryRequest struct {
	GuestName  string `json:"guest_name" validate:"required,min=2,max=255"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	GuestPhone string `json:"guest_phone" validate:"required,min=7,max=20"`
	PartySize  int    `json:"party_size" validate:"required,min=1,max=12"`
	CheckIn    string `json:"check_in" validate:"required,iso_date"`
	CheckOut   string `json:"check_out" validate:"required,iso_date"`
	Message    string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// UpdateStatusRequest for moving an inquiry through its lifecycle
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,inquiry_status"`
}

// InquiryResponse for API responses
type InquiryResponse struct {
	ID           uuid.UUID `json:"id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestPhone   string    `json:"guest_phone"`
	PartySize    int       `json:"party_size"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	BookingID    string    `json:"booking_id,omitempty"`
	WhatsAppLink string    `json:"whatsapp_link,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response, including a prefilled
// WhatsApp reply link targeting the guest's number.
func ToResponse(i *Inquiry) *InquiryResponse {
	resp := &InquiryResponse{
		ID:         i.ID,
		GuestName:  i.GuestName,
		GuestEmail: i.GuestEmail,
		GuestPhone: i.GuestPhone,
		PartySize:  i.PartySize,
		CheckIn:    i.CheckIn.Format(availability.DayLayout),
		CheckOut:   i.CheckOut.Format(availability.DayLayout),
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt.Format(time.RFC3339),
	}

	if i.Message.Valid {
		resp.Message = i.Message.String
	}
	if i.BookingID.Valid {
		resp.BookingID = i.BookingID.UUID.String()
	}

	text := fmt.Sprintf("Hello %s, thank you for your inquiry about Villa Serena (%s to %s).",
		i.GuestName, resp.CheckIn, resp.CheckOut)
	resp.WhatsAppLink = whatsapp.BuildLink(i.GuestPhone, text)

	return resp
}

// InquirySubmittedResponse for the public form
type InquirySubmittedResponse struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
	Message   string    `json:"message"`
}

// ContactResponse carries the villa's direct contact channel
type ContactResponse struct {
	Phone        string `json:"phone"`
	WhatsAppLink string `json:"whatsapp_link"`
}
