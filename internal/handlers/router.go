package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the middleware stack and all routes
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Rounds
		r.Get("/rounds", h.ListRounds)
		r.Get("/rounds/{id}", h.GetRound)

		// Stats
		r.Get("/stats/trend", h.GetTrend)
		r.Get("/stats/last", h.GetLastRound)
		r.Get("/filters/options", h.GetFilterOptions)

		// Bag
		r.Get("/bag", h.GetBag)
		r.Put("/bag", h.PutBag)
		r.Get("/bag/presets", h.GetClubPresets)
		r.Post("/bag/clubs", h.AddClub)
		r.Delete("/bag/clubs/{id}", h.DeleteClub)

		// Practice
		r.Get("/practice/drill", h.GetDrill)

		// Round cache
		r.Get("/cache", h.GetCacheStats)
		r.Delete("/cache", h.ClearCache)
	})

	return r
}
