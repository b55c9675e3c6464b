package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/domain/inquiry"
	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests (admin only)
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	response.Created(w, ToResponse(b))
}

// ConvertInquiry handles POST /bookings/from-inquiry/{id}
func (h *Handler) ConvertInquiry(w http.ResponseWriter, r *http.Request) {
	inquiryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid inquiry ID")
		return
	}

	var req ConvertInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.ConvertInquiry(r.Context(), inquiryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInquiryNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, inquiry.ErrAlreadyConverted):
			response.Conflict(w, err.Error())
		default:
			h.writeCreateError(w, err)
		}
		return
	}

	response.Created(w, ToResponse(b))
}

// List handles GET /bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	bookings, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list bookings")
		response.InternalError(w)
		return
	}

	resp := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToResponse(b))
	}

	response.WithMeta(w, resp, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// Get handles GET /bookings/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to get booking")
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(b))
}

// Confirm handles POST /bookings/{id}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Confirm, string(StatusConfirmed))
}

// Cancel handles POST /bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel, string(StatusCancelled))
}

// UpdatePayment handles PATCH /bookings/{id}/payment
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdatePaymentStatus(r.Context(), id, PaymentStatus(req.PaymentStatus)); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidPayment):
			response.Conflict(w, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to update payment status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"payment_status": req.PaymentStatus})
}

// UpdateNotes handles PATCH /bookings/{id}/notes
func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateNotes(r.Context(), id, req.Notes); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to update booking notes")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) error, status string) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	if err := fn(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrAlreadyCancelled):
			response.Conflict(w, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to update booking status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": status})
}

// writeCreateError maps creation failures, surfacing the concrete
// conflicting dates on overlap.
func (h *Handler) writeCreateError(w http.ResponseWriter, err error) {
	var unavailable *DatesUnavailableError
	switch {
	case errors.Is(err, ErrInvalidDates):
		response.ValidationError(w, map[string]string{"check_out": err.Error()})
	case errors.As(err, &unavailable):
		response.ConflictWithDetails(w, "Requested dates are unavailable", map[string]string{
			"conflicting_dates": strings.Join(unavailable.Dates, ","),
		})
	case errors.Is(err, ErrWriteConflict):
		response.Conflict(w, err.Error())
	default:
		log.Error().Err(err).Msg("Failed to create booking")
		response.InternalError(w)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}
