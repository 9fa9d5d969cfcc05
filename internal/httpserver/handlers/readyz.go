package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/docstore/internal/httpserver/deps"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

type readyzResponse struct {
	Ready    bool   `json:"ready"`
	Mirrored *int64 `json:"mirrored,omitempty"`
}

// Readyz is ready when the mirror, if configured, answers.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Mirror == nil {
			respondJSON(w, r, http.StatusOK, readyzResponse{Ready: true})
			return
		}

		n, err := d.Mirror.CountDocuments(r.Context())
		if err != nil {
			d.Logger.Warn("readiness check failed", logger.Error(err))
			respondJSON(w, r, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}
		respondJSON(w, r, http.StatusOK, readyzResponse{Ready: true, Mirrored: &n})
	}
}
