package handlers

import (
	"net/http"
)

// HealthHandler reports liveness along with the loaded model identity.
// The process never serves without a model, so liveness implies readiness.
type HealthHandler struct {
	ModelVersion string
	Columns      int
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]any{
		"status":        "ok",
		"model_version": h.ModelVersion,
		"columns":       h.Columns,
	}
	writeJSON(w, r, http.StatusOK, res)
}
