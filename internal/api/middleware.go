package api

import (
	"net/http"
	"time"

	"seedscan/internal/ratelimit"
)

// RateLimitByIP gates a handler behind the per-client-IP limiter. It must
// run after chi's RealIP middleware so RemoteAddr reflects the real client.
func RateLimitByIP(limiter *ratelimit.Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "search:" + r.RemoteAddr

			if !limiter.Allow(r.Context(), key, limit, window) {
				RespondWithError(w, ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
