package document

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/pkg/response"
)

// Handler handles document HTTP requests (admin only)
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates document handler
func NewHandler(svc *Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{svc: svc, maxBytes: maxBytes}
}

// Upload handles POST /bookings/{bookingID}/documents
// Multipart form with a single "file" field.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "bookingID"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		response.BadRequest(w, "File too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	d, err := h.svc.Upload(r.Context(), bookingID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.BadRequest(w, "File is empty")
		case errors.Is(err, ErrFileTooLarge):
			response.BadRequest(w, "File exceeds maximum size")
		case errors.Is(err, ErrUnsupportedType):
			response.BadRequest(w, "File type not allowed")
		default:
			log.Error().Err(err).Msg("Failed to upload document")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(d))
}

// List handles GET /bookings/{bookingID}/documents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "bookingID"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	docs, err := h.svc.ListByBooking(r.Context(), bookingID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list documents")
		response.InternalError(w)
		return
	}

	resp := make([]*DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, ToResponse(d))
	}
	response.OK(w, resp)
}

// Download handles GET /documents/{id}/download, streaming the file
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid document ID")
		return
	}

	d, rc, err := h.svc.Open(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to open document")
		response.InternalError(w)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(d.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.OriginalName))
	if _, err := io.Copy(w, rc); err != nil {
		log.Warn().Err(err).Msg("Document stream interrupted")
	}
}

// Delete handles DELETE /documents/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid document ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to delete document")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
