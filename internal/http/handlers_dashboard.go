package http

import "net/http"

// handleDashboard returns the derived summary over all three
// collections. It cannot fail: broken reads degrade to empty
// collections in the gateway, so the dashboard always renders.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dash.Summary(r.Context()))
}
