package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDates     = errors.New("check-out date must be after check-in date")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidPayment   = errors.New("invalid payment status transition")
	ErrWriteConflict    = errors.New("booking conflicts with a concurrent write, try again")
)

// DatesUnavailableError reports exactly which requested dates are
// already taken, so the admin sees the conflict instead of a generic
// failure.
type DatesUnavailableError struct {
	Dates []string
}

func (e *DatesUnavailableError) Error() string {
	return fmt.Sprintf("requested dates are unavailable: %s", strings.Join(e.Dates, ", "))
}
