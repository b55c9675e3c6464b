package availability

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
)

// Handler handles availability HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates availability handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListUnavailable handles GET /availability (public).
// The calendar UI disables the returned dates. On a source failure the
// client gets an explicit 503 rather than an empty, falsely-available
// calendar.
func (h *Handler) ListUnavailable(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.UnavailableDates(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute unavailable dates")
		response.ServiceUnavailable(w, "Could not load availability, try again")
		return
	}

	response.OK(w, UnavailableDatesResponse{Dates: set.Sorted()})
}

// CheckRange handles POST /availability/check (public).
func (h *Handler) CheckRange(w http.ResponseWriter, r *http.Request) {
	var req CheckRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	checkIn, _ := time.Parse(DayLayout, req.CheckIn)
	checkOut, _ := time.Parse(DayLayout, req.CheckOut)

	conflicts, err := h.svc.CheckRange(r.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			response.ValidationError(w, map[string]string{
				"check_out": ErrInvalidRange.Error(),
			})
			return
		}
		log.Error().Err(err).Msg("Failed to check availability")
		response.ServiceUnavailable(w, "Could not load availability, try again")
		return
	}

	response.OK(w, CheckRangeResponse{
		Available:        len(conflicts) == 0,
		ConflictingDates: conflicts,
	})
}
