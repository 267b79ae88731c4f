package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// HealthCheck probes one dependency. A failing critical check takes the
// service down; a failing non-critical one only degrades it.
type HealthCheck struct {
	Name     string
	Critical bool
	Ping     func(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck adapts anything with Ping(ctx) error, such as a pgx pool.
func PingCheck(name string, critical bool, p pinger) HealthCheck {
	return HealthCheck{Name: name, Critical: critical, Ping: p.Ping}
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler over the given checks.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Failing    []string              `json:"failing,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical"`
	Latency  string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every critical check passes, 503
// otherwise. Non-critical checks are not run.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results := h.run(r.Context(), true)

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	status := http.StatusOK
	for name, c := range results {
		if c.Status != "ok" {
			resp.Failing = append(resp.Failing, name)
		}
	}
	if len(resp.Failing) > 0 {
		sort.Strings(resp.Failing)
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Health runs every check with latency and includes the build version.
// It reports "degraded" with 200 when only non-critical checks fail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.run(r.Context(), false)

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: results,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	for name, c := range results {
		if c.Status == "ok" {
			continue
		}
		resp.Failing = append(resp.Failing, name)
		if c.Critical {
			resp.Status = "down"
			status = http.StatusServiceUnavailable
		} else if resp.Status == "ok" {
			resp.Status = "degraded"
		}
	}
	sort.Strings(resp.Failing)

	writeJSON(w, status, resp)
}

// run executes the checks concurrently under one shared timeout.
func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]CompStatus, len(h.checks))
	)
	for _, c := range h.checks {
		if criticalOnly && !c.Critical {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			st := CompStatus{Status: "ok", Critical: c.Critical}
			if err := c.Ping(ctx); err != nil {
				st.Status = "down"
			} else {
				st.Latency = time.Since(start).String()
			}

			mu.Lock()
			results[c.Name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
