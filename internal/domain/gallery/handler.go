package gallery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
)

// Handler handles gallery HTTP requests
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates gallery handler
func NewHandler(svc *Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{svc: svc, maxBytes: maxBytes}
}

// List handles GET /gallery (public)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list gallery")
		response.InternalError(w)
		return
	}

	resp := make([]*PhotoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, ToResponse(p, h.svc))
	}
	response.OK(w, resp)
}

// Upload handles POST /gallery (admin)
// Multipart form: file + optional caption.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		response.BadRequest(w, "File too large or invalid form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	p, err := h.svc.Upload(r.Context(), r.FormValue("caption"), file)
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			response.BadRequest(w, "File is not a supported image")
			return
		}
		log.Error().Err(err).Msg("Failed to upload gallery photo")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(p, h.svc))
}

// UpdateCaption handles PATCH /gallery/{id}/caption (admin)
func (h *Handler) UpdateCaption(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	var req UpdateCaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateCaption(r.Context(), id, req.Caption); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to update caption")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// UpdateSortOrder handles PATCH /gallery/{id}/order (admin)
func (h *Handler) UpdateSortOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	var req UpdateSortOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.svc.UpdateSortOrder(r.Context(), id, req.SortOrder); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to update sort order")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /gallery/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid photo ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to delete gallery photo")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
