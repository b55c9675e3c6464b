package availability

import "errors"

var (
	ErrInvalidRange      = errors.New("check-out date must be after check-in date")
	ErrSourceUnavailable = errors.New("availability sources could not be read")
)
