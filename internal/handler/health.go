package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	logger *slog.Logger
	db     HealthChecker
	cache  HealthChecker
}

// NewHealthHandler creates a HealthHandler. db and cache may be nil when
// the corresponding backend is not configured; a nil checker is reported
// as "disabled" and never fails readiness.
func NewHealthHandler(logger *slog.Logger, db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{logger: logger, db: db, cache: cache}
}

// Healthz is the liveness probe: the process is up.
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz is the readiness probe: backing dependencies answer within a
// short deadline.
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	ready := true

	checks["database"] = h.check(ctx, "database", h.db, &ready)
	checks["cache"] = h.check(ctx, "cache", h.cache, &ready)

	status := http.StatusOK
	body := map[string]any{"status": "ready", "checks": checks}
	if !ready {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}
	writeJSON(w, status, body)
}

func (h *HealthHandler) check(ctx context.Context, name string, checker HealthChecker, ready *bool) string {
	if checker == nil {
		return "disabled"
	}
	if err := checker.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed",
			slog.String("dependency", name),
			slog.String("error", err.Error()),
		)
		*ready = false
		return "unreachable"
	}
	return "ok"
}
