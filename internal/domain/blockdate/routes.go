package blockdate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the admin blocked-dates router.
func (h *Handler) Routes(adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(adminMiddleware)

	r.Get("/", h.List)
	r.Post("/", h.Block)
	r.Delete("/{date}", h.Unblock)

	return r
}
