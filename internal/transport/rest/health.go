package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/patri2022onw/GermanTextLevel/internal/domain"
	"github.com/patri2022onw/GermanTextLevel/internal/service/analyzer"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check and stats endpoints.
type HealthHandler struct {
	svc     *analyzer.Service
	db      dbPinger // nil when persistence is disabled
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil.
func NewHealthHandler(svc *analyzer.Service, db dbPinger, version string) *HealthHandler {
	return &HealthHandler{svc: svc, db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The service is ready when the vocabulary
// index holds at least one word and, if configured, the database answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	if h.svc.Index().Len() == 0 {
		status = "down"
	}
	if h.db != nil && h.db.Ping(ctx) != nil {
		status = "down"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is the full health check: per-component status plus version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.svc.Index().Len() > 0 {
		components["vocabulary"] = CompStatus{Status: "ok"}
	} else {
		components["vocabulary"] = CompStatus{Status: "down"}
		overallStatus = "down"
	}

	if h.db != nil {
		start := time.Now()
		if err := h.db.Ping(ctx); err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: time.Since(start).String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// StatsResponse is the JSON response for /v1/stats.
type StatsResponse struct {
	TotalWords    int                  `json:"total_words"`
	WordsPerLevel map[domain.Level]int `json:"words_per_level"`
	Stopwords     int                  `json:"stopwords"`
	CoreWords     int                  `json:"core_words"`
}

// Stats reports vocabulary index and exclusion set sizes.
func (h *HealthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	perLevel := make(map[domain.Level]int, len(domain.Levels))
	for _, level := range domain.Levels {
		perLevel[level] = h.svc.Index().CountByLevel(level)
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		TotalWords:    h.svc.Index().Len(),
		WordsPerLevel: perLevel,
		Stopwords:     h.svc.Exclusions().StopwordCount(),
		CoreWords:     h.svc.Exclusions().CoreWordCount(),
	})
}
