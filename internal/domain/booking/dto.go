package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/domain/availability"
)

// CreateBookingRequest for admin booking creation
type CreateBookingRequest struct {
	GuestName   string `json:"guest_name" validate:"required,min=2,max=255"`
	GuestEmail  string `json:"guest_email" validate:"required,email"`
	GuestPhone  string `json:"guest_phone" validate:"required,min=7,max=20"`
	PartySize   int    `json:"party_size" validate:"required,min=1,max=12"`
	CheckIn     string `json:"check_in" validate:"required,iso_date"`
	CheckOut    string `json:"check_out" validate:"required,iso_date"`
	TotalAmount int64  `json:"total_amount,omitempty" validate:"omitempty,min=0"` // minor units
	Currency    string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ConvertInquiryRequest for turning an inquiry into a booking
type ConvertInquiryRequest struct {
	TotalAmount int64  `json:"total_amount,omitempty" validate:"omitempty,min=0"`
	Currency    string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Notes       string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdatePaymentRequest for recording an off-platform payment event
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,payment_status"`
}

// UpdateNotesRequest for replacing admin notes
type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	GuestPhone    string    `json:"guest_phone"`
	PartySize     int       `json:"party_size"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Nights        int       `json:"nights"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount,omitempty"`
	Currency      string    `json:"currency"`
	Notes         string    `json:"notes,omitempty"`
	InquiryID     string    `json:"inquiry_id,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	stay := availability.StayRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}

	resp := &BookingResponse{
		ID:            b.ID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		PartySize:     b.PartySize,
		CheckIn:       b.CheckIn.Format(availability.DayLayout),
		CheckOut:      b.CheckOut.Format(availability.DayLayout),
		Nights:        stay.Nights(),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Currency:      b.Currency,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}

	if b.TotalAmount.Valid {
		resp.TotalAmount = b.TotalAmount.Int64
	}
	if b.Notes.Valid {
		resp.Notes = b.Notes.String
	}
	if b.InquiryID.Valid {
		resp.InquiryID = b.InquiryID.UUID.String()
	}

	return resp
}
