package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/villaserena/villa-api/internal/pkg/response"
	"github.com/villaserena/villa-api/internal/pkg/validator"
)

// Handler handles admin session HTTP requests
type Handler struct {
	auth *Authorizer
}

// NewHandler creates admin handler
func NewHandler(auth *Authorizer) *Handler {
	return &Handler{auth: auth}
}

// Login handles POST /admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, expiresAt, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// Session handles GET /admin/session, a cheap token check for the panel
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]bool{"valid": true})
}
