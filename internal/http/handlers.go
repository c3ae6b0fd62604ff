package http

import (
	"context"
	"net/http"
	"time"
)

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	})
}

// handleReady verifies the backing store answers before reporting
// ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status := "ready"
	httpStatus := http.StatusOK

	if s.ready == nil {
		checks["store"] = "not_configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else if err := s.ready(ctx); err != nil {
		checks["store"] = "failed: " + err.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": checks,
	})
}
