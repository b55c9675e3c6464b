package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/villaserena/villa-api/internal/pkg/response"
)

// RateLimit limits requests per client IP using a fixed one-minute window
// in Redis. With a nil client the limiter is a no-op, so development
// without Redis keeps working.
func RateLimit(client *redis.Client, perMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || perMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, getClientIP(r))

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis trouble must not take the public site down
				log.Warn().Err(err).Msg("Rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(r.Context(), key, time.Minute)
			}

			if count > int64(perMinute) {
				response.TooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
