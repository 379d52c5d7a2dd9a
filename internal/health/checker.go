// Package health aggregates connectivity checks for the service's
// dependencies (Redis, NATS) behind /health and the scheduled log snapshot.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
)

// Pinger is anything that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NATSConn is the subset of *nats.Conn the checker needs.
type NATSConn interface {
	Status() nats.Status
}

// Checker checks the health of the service's external dependencies.
type Checker struct {
	redis Pinger
	nats  NATSConn
}

// NewChecker creates a Checker. Either dependency may be nil, in which case
// that check is skipped.
func NewChecker(redis Pinger, nc NATSConn) *Checker {
	return &Checker{redis: redis, nats: nc}
}

// Check performs the health checks and returns the aggregated status.
func (c *Checker) Check(ctx context.Context) map[string]string {
	status := make(map[string]string)
	status["status"] = "ok"

	if c.redis != nil {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		if err := c.redis.Ping(pingCtx); err != nil {
			status["redis"] = "unhealthy"
			status["status"] = "degraded"
		} else {
			status["redis"] = "healthy"
		}
		cancel()
	}

	if c.nats != nil {
		if c.nats.Status() != nats.CONNECTED {
			status["nats"] = "unhealthy"
			status["status"] = "degraded"
		} else {
			status["nats"] = "healthy"
		}
	}

	return status
}

// Handler returns an HTTP handler for GET /health.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := c.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")

		statusCode := http.StatusOK
		if status["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(status)
	}
}
