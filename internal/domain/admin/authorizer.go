package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/pkg/password"
	"github.com/villaserena/villa-api/internal/pkg/response"
)

const sessionTokenType = "admin_session"

type contextKey string

// SessionIDKey holds the session token ID in request context
const SessionIDKey contextKey = "session_id"

// SessionClaims represents admin session JWT claims
type SessionClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Authorizer is the single gate for every privileged operation. It
// issues session tokens against the shared admin password and checks
// them on each request; route groups take its Require middleware
// instead of doing their own credential checks.
type Authorizer struct {
	passwordHash string
	secret       []byte
	sessionTTL   time.Duration
}

// NewAuthorizer creates admin authorizer
func NewAuthorizer(passwordHash, secret string, sessionTTL time.Duration) *Authorizer {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &Authorizer{
		passwordHash: passwordHash,
		secret:       []byte(secret),
		sessionTTL:   sessionTTL,
	}
}

// Login verifies the shared admin password and issues a session token
func (a *Authorizer) Login(pass string) (string, time.Time, error) {
	if a.passwordHash == "" || !password.Verify(pass, a.passwordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(a.sessionTTL)
	claims := SessionClaims{
		Type: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateSession validates and parses a session token
func (a *Authorizer) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Type != sessionTokenType {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Require returns middleware that rejects requests without a valid
// admin session
func (a *Authorizer) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := a.ValidateSession(parts[1])
		if err != nil {
			if errors.Is(err, ErrExpiredSession) {
				response.Unauthorized(w, "Session expired")
			} else {
				response.Unauthorized(w, "Invalid session token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
