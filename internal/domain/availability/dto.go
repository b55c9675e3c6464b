package availability

// CheckRangeRequest is a candidate stay submitted for validation.
type CheckRangeRequest struct {
	CheckIn  string `json:"check_in" validate:"required,iso_date"`
	CheckOut string `json:"check_out" validate:"required,iso_date"`
}

// UnavailableDatesResponse lists every unavailable date, ascending.
type UnavailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// CheckRangeResponse reports whether a candidate stay is free and, when
// it is not, exactly which dates conflict.
type CheckRangeResponse struct {
	Available        bool     `json:"available"`
	ConflictingDates []string `json:"conflicting_dates,omitempty"`
}
