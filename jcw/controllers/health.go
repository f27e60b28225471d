package controllers

import (
	"encoding/json"
	"net/http"

	"jcw/jcw/services/indexer"
)

type HealthController struct {
	indexer *indexer.Indexer
}

func NewHealthController(ix *indexer.Indexer) *HealthController {
	return &HealthController{indexer: ix}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if h.indexer != nil {
		body["indexed_pages"] = len(h.indexer.IndexedPaths())
		if last := h.indexer.LastUpdated(); !last.IsZero() {
			body["content_updated_at"] = last
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}
