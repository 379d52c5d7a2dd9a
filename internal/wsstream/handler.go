// Package wsstream implements the streaming search protocol over a single
// WebSocket connection: one request frame in, zero or more match frames and
// a terminating done frame out.
package wsstream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"seedscan/internal/engine"
	"seedscan/internal/events"
	"seedscan/internal/logging"
	"seedscan/internal/metrics"
	"seedscan/internal/oracle"
	"seedscan/internal/registry"
	"seedscan/internal/validate"
)

const readDeadline = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// seedFrame is one match delivered during a stream.
type seedFrame struct {
	Seed int64 `json:"seed"`
}

// doneFrame terminates a successful stream.
type doneFrame struct {
	Done    bool  `json:"done"`
	Scanned int64 `json:"scanned"`
}

// errorFrame reports a parse/validation failure; the connection closes
// with code 1003 immediately after.
type errorFrame struct {
	Error string `json:"error"`
}

// Handler upgrades /stream connections and runs one streaming search per
// connection.
type Handler struct {
	Engine  *engine.Engine
	Oracle  oracle.Oracle
	Events  *events.Publisher
	Metrics *metrics.Metrics
}

// New builds a streaming Handler.
func New(e *engine.Engine, o oracle.Oracle, pub *events.Publisher, m *metrics.Metrics) *Handler {
	return &Handler{Engine: e, Oracle: o, Events: pub, Metrics: m}
}

// ServeHTTP upgrades the connection and drives the single-request,
// many-response protocol described by the service's streaming contract.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readDeadline))

	var wire validate.WireRequest
	if err := readStrictJSON(conn, &wire); err != nil {
		h.writeError(conn, "malformed request frame")
		return
	}
	// The deadline bounds only the request frame; watchClientClose reads
	// with none, so a long scan is not cut short by it.
	conn.SetReadDeadline(time.Time{})

	req, err := validate.Validate(h.Oracle, wire)
	if err != nil {
		h.writeError(conn, err.Error())
		return
	}

	start := time.Now()
	h.Metrics.ActiveScans.Inc()
	defer h.Metrics.ActiveScans.Dec()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go h.watchClientClose(conn, cancel)

	var writeErr bool
	var matchCount int
	scanned := h.Engine.SearchStream(ctx, req, func(seed int64) {
		matchCount++
		if writeErr {
			return
		}
		if err := conn.WriteJSON(seedFrame{Seed: seed}); err != nil {
			writeErr = true
		}
	})

	h.Metrics.SearchLatency.WithLabelValues("stream").Observe(time.Since(start).Seconds())
	h.Metrics.SeedsScanned.Add(float64(scanned))

	h.Events.Publish(events.SearchCompleted{
		RequestID:      uuid.New().String(),
		Version:        registry.VersionString(req.Version),
		SeedStart:      req.SeedStart,
		SeedEnd:        req.SeedEnd,
		MaxResults:     req.MaxResults,
		StructureCount: len(req.Structures),
		MatchCount:     matchCount,
		Scanned:        scanned,
		DurationMs:     events.Duration(start),
	})

	if !writeErr {
		conn.WriteJSON(doneFrame{Done: true, Scanned: scanned})
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
	}
}

// readStrictJSON reads the next text frame and decodes it with unknown
// fields disallowed, matching the HTTP body's decodeStrict.
func readStrictJSON(conn *websocket.Conn, v interface{}) error {
	_, r, err := conn.NextReader()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (h *Handler) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(errorFrame{Error: message})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseUnsupportedData, message),
		time.Now().Add(time.Second))
}

// watchClientClose blocks on a read (there is nothing more to read in this
// protocol after the request frame) purely to detect the client closing
// the connection, and cancels ctx so the engine can stop early.
func (h *Handler) watchClientClose(conn *websocket.Conn, cancel context.CancelFunc) {
	for {
		if _, _, err := conn.NextReader(); err != nil {
			cancel()
			return
		}
	}
}
