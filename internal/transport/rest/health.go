package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
	Driver() string
}

type sessionCounter interface {
	ActiveSessions() int
}

// pingTimeout bounds a single store ping.
const pingTimeout = 3 * time.Second

// Health statuses.
const (
	statusOK   = "ok"
	statusDown = "down"
)

// HealthHandler serves liveness, readiness and a detailed health report
// covering the word store and the quiz engine.
type HealthHandler struct {
	store    pinger
	sessions sessionCounter
	version  string
	log      *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store pinger, sessions sessionCounter, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		sessions: sessions,
		version:  version,
		log:      logger.With("handler", "health"),
	}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus reports one component. Store components carry the driver
// and ping latency; the quiz component carries the live session count.
type ComponentStatus struct {
	Status         string `json:"status"`
	Driver         string `json:"driver,omitempty"`
	Latency        string `json:"latency,omitempty"`
	ActiveSessions *int   `json:"active_sessions,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 200 when the store responds, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	store := h.pingStore(r.Context())

	status := http.StatusOK
	if store.Status != statusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: store.Status, Timestamp: time.Now()})
}

// Health reports the store and the quiz engine. The overall status follows
// the store; the quiz engine is in-process and always up.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	store := h.pingStore(r.Context())
	sessions := h.sessions.ActiveSessions()

	status := http.StatusOK
	if store.Status != statusOK {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:  store.Status,
		Version: h.version,
		Components: map[string]ComponentStatus{
			"store": store,
			"quiz":  {Status: statusOK, ActiveSessions: &sessions},
		},
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) pingStore(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	driver := h.store.Driver()
	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "store ping failed",
			slog.String("driver", driver),
			slog.String("error", err.Error()),
		)
		return ComponentStatus{Status: statusDown, Driver: driver}
	}
	return ComponentStatus{Status: statusOK, Driver: driver, Latency: time.Since(start).String()}
}
