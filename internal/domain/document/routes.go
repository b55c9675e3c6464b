package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns document admin routes
func Routes(h *Handler, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(adminMiddleware)

	r.Post("/booking/{bookingID}", h.Upload)
	r.Get("/booking/{bookingID}", h.List)
	r.Get("/{id}/download", h.Download)
	r.Delete("/{id}", h.Delete)

	return r
}
