// Package ratelimit implements a per-client-IP fixed-window request
// limiter backed by Redis, consulted by HTTP middleware ahead of /search
// and /stream.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Limiter checks and increments a Redis-backed request counter per key.
type Limiter struct {
	client *redis.Client
	log    zerolog.Logger
}

// New creates a Limiter over an existing Redis client.
func New(client *redis.Client, log zerolog.Logger) *Limiter {
	return &Limiter{client: client, log: log.With().Str("component", "ratelimit").Logger()}
}

// Allow reports whether a request tagged with key is within limit over
// window, using INCR+EXPIRE to implement a fixed window. key is typically
// "search:<client-ip>". On Redis failure it fails open (allows the
// request) and logs a warning rather than blocking search traffic.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	rateLimitKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, rateLimitKey).Result()
	if err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, failing open")
		return true
	}

	if count == 1 {
		if err := l.client.Expire(ctx, rateLimitKey, window).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("failed to set rate limit expiry")
		}
	}

	return count <= int64(limit)
}
