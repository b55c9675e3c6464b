package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the public gallery listing
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// AdminRoutes returns gallery management routes
func AdminRoutes(h *Handler, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(adminMiddleware)

	r.Post("/", h.Upload)
	r.Patch("/{id}/caption", h.UpdateCaption)
	r.Patch("/{id}/order", h.UpdateSortOrder)
	r.Delete("/{id}", h.Delete)

	return r
}
