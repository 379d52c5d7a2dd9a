package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedscan/internal/engine"
	"seedscan/internal/events"
	"seedscan/internal/metrics"
	"seedscan/internal/oracle"
	"seedscan/internal/testutil"
)

// newTestRouter wires the routable handlers without auth or rate-limit
// middleware, so these tests exercise the HTTP plumbing (routing, JSON
// encoding/decoding) against a real listening server rather than the
// handlers' Go functions directly.
func newTestRouter() *chi.Mux {
	o := oracle.NewSyntheticOracle()
	h := New(engine.New(o), o, events.NewPublisher(nil, zerolog.Nop()), metrics.NewMetrics())

	r := chi.NewRouter()
	r.Post("/search", h.Search)
	r.Get("/structures", ListStructures)
	r.Get("/biomes", ListBiomes)
	return r
}

func TestSearchEndToEndOverRealServer(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	client := srv.Client()

	body := map[string]interface{}{
		"version":     "1.21",
		"seed_start":  0,
		"seed_end":    20000,
		"max_results": 3,
		"structures":  []map[string]interface{}{{"type": "village", "max_distance": 4000}},
	}

	resp := testutil.PostJSON(t, client, srv.URL+"/search", body)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var out searchResponse
	testutil.DecodeJSON(t, resp, &out)
	assert.LessOrEqual(t, len(out.Seeds), 3)
}

func TestStructuresEndToEndOverRealServer(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	resp := testutil.Get(t, srv.Client(), srv.URL+"/structures")
	testutil.AssertStatus(t, resp, http.StatusOK)

	var out map[string][]string
	testutil.DecodeJSON(t, resp, &out)
	require.Contains(t, out["structures"], "village")
}
