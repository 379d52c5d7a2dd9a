// Package api wires the HTTP surface (search, registry discovery, bearer
// auth, rate-limit middleware) onto the engine.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"seedscan/internal/engine"
	"seedscan/internal/events"
	"seedscan/internal/logging"
	"seedscan/internal/metrics"
	"seedscan/internal/oracle"
	"seedscan/internal/registry"
	"seedscan/internal/validate"
)

// searchResponse is the batched /search wire response.
type searchResponse struct {
	Seeds   []int64 `json:"seeds"`
	Scanned int64   `json:"scanned"`
}

// Handlers holds the dependencies every HTTP handler needs.
type Handlers struct {
	Engine  *engine.Engine
	Oracle  oracle.Oracle
	Events  *events.Publisher
	Metrics *metrics.Metrics
}

// New builds a Handlers bundle.
func New(e *engine.Engine, o oracle.Oracle, pub *events.Publisher, m *metrics.Metrics) *Handlers {
	return &Handlers{Engine: e, Oracle: o, Events: pub, Metrics: m}
}

func decodeStrict(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Search handles POST /search: a batched scan over a bounded seed range.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logging.FromContext(r.Context())

	var wire validate.WireRequest
	if err := decodeStrict(r, &wire); err != nil {
		h.Metrics.ErrorRates.WithLabelValues("/search", "decode").Inc()
		RespondWithError(w, Wrap(ErrBadRequest, "malformed request body"))
		return
	}

	req, err := validate.Validate(h.Oracle, wire)
	if err != nil {
		h.Metrics.ErrorRates.WithLabelValues("/search", "validation").Inc()
		RespondWithError(w, Wrap(ErrBadRequest, err.Error()))
		return
	}

	h.Metrics.ActiveScans.Inc()
	defer h.Metrics.ActiveScans.Dec()

	result := h.Engine.Search(r.Context(), req)

	h.Metrics.SearchLatency.WithLabelValues("batched").Observe(time.Since(start).Seconds())
	h.Metrics.SeedsScanned.Add(float64(result.Scanned))
	h.Metrics.MatchesFound.Add(float64(len(result.Seeds)))

	h.Events.Publish(events.SearchCompleted{
		RequestID:      uuid.New().String(),
		Version:        registry.VersionString(req.Version),
		SeedStart:      req.SeedStart,
		SeedEnd:        req.SeedEnd,
		MaxResults:     req.MaxResults,
		StructureCount: len(req.Structures),
		MatchCount:     len(result.Seeds),
		Scanned:        result.Scanned,
		DurationMs:     events.Duration(start),
	})

	log.Info().
		Int("matches", len(result.Seeds)).
		Int64("scanned", result.Scanned).
		Dur("duration", time.Since(start)).
		Msg("search completed")

	writeJSON(w, http.StatusOK, searchResponse{Seeds: result.Seeds, Scanned: result.Scanned})
}

// ListStructures handles GET /structures.
func ListStructures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"structures": registry.ListStructures()})
}

// ListBiomes handles GET /biomes.
func ListBiomes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"biomes": registry.ListBiomes()})
}
