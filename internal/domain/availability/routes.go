package availability

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the public availability router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListUnavailable)
	r.Post("/check", h.CheckRange)

	return r
}
