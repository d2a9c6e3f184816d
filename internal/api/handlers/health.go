package handlers

import (
	"net/http"
)

// Health reports process liveness. It deliberately checks nothing
// downstream: the optimizer degrades per dependency (cache miss, solver
// fallback) instead of going unhealthy as a whole.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "route-optimization-service",
	})
}
