// Package events publishes scan-completion events to NATS for downstream
// observability/billing pipelines. It never carries the matched seed list,
// only request shape and counts.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// SearchCompletedSubject is the NATS subject scan-completion events publish
// to.
const SearchCompletedSubject = "seedscan.search.completed"

// SearchCompleted is the payload published when a search finishes. It
// intentionally excludes the matched seed list.
type SearchCompleted struct {
	RequestID      string `json:"requestID"`
	Version        string `json:"version"`
	SeedStart      int64  `json:"seedStart"`
	SeedEnd        int64  `json:"seedEnd"`
	MaxResults     int    `json:"maxResults"`
	StructureCount int    `json:"structureCount"`
	MatchCount     int    `json:"matchCount"`
	Scanned        int64  `json:"scanned"`
	DurationMs     int64  `json:"durationMs"`
}

// Publisher publishes SearchCompleted events. A nil-conn Publisher is a
// no-op, so eventing can be disabled without branching at every call site.
type Publisher struct {
	nc  *nats.Conn
	log zerolog.Logger
}

// NewPublisher wraps an existing NATS connection. conn may be nil, in which
// case Publish is a no-op.
func NewPublisher(conn *nats.Conn, log zerolog.Logger) *Publisher {
	return &Publisher{nc: conn, log: log.With().Str("component", "events").Logger()}
}

// Publish emits a scan-completed event. Failures are logged, never
// returned: eventing is observability, not a correctness dependency of the
// search path.
func (p *Publisher) Publish(evt SearchCompleted) {
	if p.nc == nil {
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		p.log.Error().Err(err).Msg("failed to marshal scan-completed event")
		return
	}

	if err := p.nc.Publish(SearchCompletedSubject, data); err != nil {
		p.log.Warn().Err(err).Msg("failed to publish scan-completed event")
	}
}

// Duration is a small helper so callers can compute DurationMs from a
// start time without importing time at every call site.
func Duration(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
