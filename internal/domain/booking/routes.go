package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking admin routes
func Routes(h *Handler, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(adminMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/from-inquiry/{id}", h.ConvertInquiry)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/confirm", h.Confirm)
	r.Post("/{id}/cancel", h.Cancel)
	r.Patch("/{id}/payment", h.UpdatePayment)
	r.Patch("/{id}/notes", h.UpdateNotes)

	return r
}
