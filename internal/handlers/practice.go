package handlers

import (
	"net/http"
	"strconv"

	"golf_stats/internal/domain/practice"
)

// GetDrill returns the suggested drill
// Query params: premium
func (h *Handler) GetDrill(w http.ResponseWriter, r *http.Request) {
	premium, _ := strconv.ParseBool(r.URL.Query().Get("premium"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"drill":   practice.SuggestedDrill(premium),
		"premium": premium,
	})
}
