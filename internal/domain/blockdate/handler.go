package blockdate

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/domain/availability"
	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
)

// Handler handles blocked-date HTTP requests (admin only)
type Handler struct {
	svc *Service
}

// NewHandler creates blocked-date handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /blocked-dates
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.svc.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list blocked dates")
		response.InternalError(w)
		return
	}

	resp := make([]*BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, ToResponse(b))
	}
	response.OK(w, resp)
}

// Block handles POST /blocked-dates
func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	date, _ := time.Parse(availability.DayLayout, req.Date)

	block, err := h.svc.Block(r.Context(), date, req.Reason)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("Failed to block date")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(block))
}

// Unblock handles DELETE /blocked-dates/{date}
func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	date, err := time.Parse(availability.DayLayout, raw)
	if err != nil {
		response.BadRequest(w, "Invalid date. Expected format: YYYY-MM-DD")
		return
	}

	if err := h.svc.Unblock(r.Context(), date); err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Str("date", raw).Msg("Failed to unblock date")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
