package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID, minting one when
// the client did not supply it. The header is set on the request too so
// downstream handlers and the access log can read it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		r.Header.Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)
	})
}

// Timeout bounds handler execution with http.TimeoutHandler. Not safe
// for routes that hijack the connection, such as WebSocket upgrades.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "Request timeout")
	}
}
