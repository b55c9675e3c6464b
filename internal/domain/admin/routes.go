package admin

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns admin session routes. Login is public; the session
// check sits behind the authorizer itself.
func Routes(h *Handler, auth *Authorizer) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.With(auth.Require).Get("/session", h.Session)

	return r
}
