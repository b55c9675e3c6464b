package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns the public inquiry router. The rate limiter
// keeps the open form from being flooded.
func (h *Handler) PublicRoutes(rateLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(rateLimit).Post("/", h.Submit)
	r.Get("/contact", h.Contact)
	return r
}

// AdminRoutes returns the admin inquiry router.
func (h *Handler) AdminRoutes(adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(adminMiddleware)

	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/status", h.UpdateStatus)

	return r
}
