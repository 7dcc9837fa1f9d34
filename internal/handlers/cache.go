package handlers

import (
	"net/http"
)

// GetCacheStats handles GET /api/v1/cache
func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		respondError(w, http.StatusNotFound, "round cache is disabled", nil)
		return
	}
	respondJSON(w, http.StatusOK, h.cache.GetCacheStats())
}

// ClearCache handles DELETE /api/v1/cache so the next read goes to the round store
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		respondError(w, http.StatusNotFound, "round cache is disabled", nil)
		return
	}
	h.cache.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}
