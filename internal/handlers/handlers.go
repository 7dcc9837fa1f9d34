package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"golf_stats/internal/application/services"
	"golf_stats/internal/store"

	"github.com/rs/zerolog/log"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	stats *services.RoundStatsService
	bags  *services.BagService
	cache RoundCache
}

// RoundCache is the control surface of a cached round store
type RoundCache interface {
	ClearCache()
	GetCacheStats() store.CacheStats
}

// NewHandler creates a new handler with dependencies
func NewHandler(stats *services.RoundStatsService, bags *services.BagService) *Handler {
	return &Handler{
		stats: stats,
		bags:  bags,
	}
}

// WithRoundCache exposes cache stats and invalidation for a cached round store
func (h *Handler) WithRoundCache(cache RoundCache) *Handler {
	h.cache = cache
	return h
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthCheck reports that the service is up
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "golf-stats",
	}
	if h.cache != nil {
		body["roundCache"] = h.cache.GetCacheStats()
	}
	respondJSON(w, http.StatusOK, body)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).Int("status", status).Msg(message)
	}

	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
