package admin

// LoginRequest for admin login
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse returns the session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
