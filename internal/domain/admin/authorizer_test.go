package admin

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/villaserena/villa-api/internal/pkg/password"
)

func testAuthorizer(t *testing.T, ttl time.Duration) *Authorizer {
	t.Helper()
	hash, err := password.Hash("correct-horse-battery")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	return NewAuthorizer(hash, "test-secret", ttl)
}

func TestLogin(t *testing.T) {
	auth := testAuthorizer(t, time.Hour)

	token, expiresAt, err := auth.Login("correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	claims, err := auth.ValidateSession(token)
	if err != nil {
		t.Fatalf("ValidateSession() error = %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("subject = %s, want admin", claims.Subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := testAuthorizer(t, time.Hour)

	if _, _, err := auth.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginEmptyHash(t *testing.T) {
	auth := NewAuthorizer("", "test-secret", time.Hour)

	if _, _, err := auth.Login("anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() with no configured hash: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateSessionExpired(t *testing.T) {
	auth := testAuthorizer(t, time.Hour)
	// The constructor clamps non-positive TTLs, so force the expired
	// window on the struct directly
	auth.sessionTTL = -time.Minute

	token, _, err := auth.Login("correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := auth.ValidateSession(token); !errors.Is(err, ErrExpiredSession) {
		t.Errorf("ValidateSession() error = %v, want ErrExpiredSession", err)
	}
}

func TestNewAuthorizerClampsTTL(t *testing.T) {
	auth := NewAuthorizer("hash", "test-secret", 0)
	if auth.sessionTTL != 12*time.Hour {
		t.Errorf("sessionTTL = %v, want 12h default for non-positive input", auth.sessionTTL)
	}
}

func TestValidateSessionForeignToken(t *testing.T) {
	auth := testAuthorizer(t, time.Hour)
	other := testAuthorizer(t, time.Hour)
	other.secret = []byte("different-secret")

	token, _, err := other.Login("correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := auth.ValidateSession(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("ValidateSession() error = %v, want ErrInvalidSession", err)
	}
}

func TestRequireMiddleware(t *testing.T) {
	auth := testAuthorizer(t, time.Hour)

	token, _, err := auth.Login("correct-horse-battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.Require(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "token-without-scheme", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
