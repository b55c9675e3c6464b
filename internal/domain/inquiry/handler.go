package inquiry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
	"github.com/villaserena/villa-api/internal/pkg/whatsapp"
)

// Handler handles inquiry HTTP requests
type Handler struct {
	svc        *Service
	villaPhone string
}

// NewHandler creates inquiry handler
func NewHandler(svc *Service, villaPhone string) *Handler {
	return &Handler{svc: svc, villaPhone: villaPhone}
}

// Submit handles POST /inquiries (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	inq, err := h.svc.Submit(r.Context(), &req, clientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidDates) {
			response.ValidationError(w, map[string]string{"check_out": err.Error()})
			return
		}
		log.Error().Err(err).Msg("Failed to submit inquiry")
		response.InternalError(w)
		return
	}

	response.Created(w, InquirySubmittedResponse{
		InquiryID: inq.ID,
		Message:   "Thank you! We will get back to you shortly.",
	})
}

// Contact handles GET /inquiries/contact (public)
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	response.OK(w, ContactResponse{
		Phone:        h.villaPhone,
		WhatsAppLink: whatsapp.BuildLink(h.villaPhone, "Hi! I'd like to ask about Villa Serena."),
	})
}

// List handles GET /inquiries (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		status = &st
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	inquiries, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list inquiries")
		response.InternalError(w)
		return
	}

	resp := make([]*InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		resp = append(resp, ToResponse(inq))
	}

	response.WithMeta(w, resp, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// Get handles GET /inquiries/{id} (admin)
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid inquiry ID")
		return
	}

	inq, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInquiryNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to get inquiry")
		response.InternalError(w)
		return
	}

	response.OK(w, ToResponse(inq))
}

// UpdateStatus handles PATCH /inquiries/{id}/status (admin)
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid inquiry ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrAlreadyConverted):
			response.Conflict(w, err.Error())
		default:
			log.Error().Err(err).Msg("Failed to update inquiry status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"status": req.Status})
}

// Stats handles GET /inquiries/stats (admin)
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get inquiry stats")
		response.InternalError(w)
		return
	}

	response.OK(w, stats)
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	return r.RemoteAddr
}
