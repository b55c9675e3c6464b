package inquiry

import "errors"

var (
	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrAlreadyConverted = errors.New("inquiry is already converted to a booking")
	ErrInvalidDates     = errors.New("check-out date must be after check-in date")
)
