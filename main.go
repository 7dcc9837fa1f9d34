package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/application/services"
	"golf_stats/internal/bag"
	"golf_stats/internal/handlers"
	"golf_stats/internal/store"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	addr := flag.String("addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	runOnce := flag.Bool("once", false, "Log a stats snapshot and exit (don't start the server)")
	seed := flag.Bool("seed", false, "Create the round store schema, load the sample rounds and exit")
	flag.Parse()

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *addr != "" {
		config.HTTPAddr = *addr
	}

	log.Info().
		Str("round_store", config.RoundStore).
		Str("bag_store", config.BagStore).
		Dur("round_cache_ttl", config.RoundCacheTTL).
		Bool("run_once", *runOnce).
		Msg("Starting golf stats service")

	ctx := context.Background()

	if *seed {
		if err := seedRoundStore(ctx, config); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed round store")
		}
		return
	}

	// Initialize stores
	roundStore, closeRounds, err := newRoundStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create round store")
	}
	defer closeRounds()

	kvStore, closeKV, err := newKVStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bag store")
	}
	defer closeKV()

	stats := services.NewRoundStatsService(roundStore, config.TrendWindow)
	bags := services.NewBagService(bag.NewStorage(kvStore))

	if *runOnce {
		logSnapshot(ctx, stats)
		log.Info().Msg("Run-once mode: exiting after snapshot")
		return
	}

	handler := handlers.NewHandler(stats, bags)
	if cache, ok := roundStore.(*store.CachedStore); ok {
		handler.WithRoundCache(cache)
	}

	srv := &http.Server{
		Addr:         config.HTTPAddr,
		Handler:      handlers.NewRouter(handler, config.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(srv, shutdown); err != nil {
		closeKV()
		closeRounds()
		log.Fatal().Err(err).Str("addr", config.HTTPAddr).Msg("Server failed")
	}

	log.Info().Msg("Shutdown complete")
}

// serve runs srv until a signal arrives on shutdown, then drains it.
// It returns the listen error when the server stops on its own.
func serve(srv *http.Server, shutdown <-chan os.Signal) error {
	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Graceful shutdown failed")
			if err := srv.Close(); err != nil {
				log.Error().Err(err).Msg("Could not stop server")
			}
		}
	}
	return nil
}

// logSnapshot logs the last round and the current trend
func logSnapshot(ctx context.Context, stats *services.RoundStatsService) {
	last, err := stats.LastRound(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load last round")
		return
	}
	if last == nil {
		log.Info().Msg("No rounds recorded yet")
		return
	}

	event := log.Info().
		Str("round_id", last.ID).
		Str("course", last.Course).
		Int("score", last.Score).
		Int("putts", last.Putts).
		Float64("fir_pct", last.FIRPct).
		Float64("gir_pct", last.GIRPct)
	if last.NetVsHcp != nil {
		event = event.Int("net_vs_hcp", *last.NetVsHcp)
	}
	event.Msg("Last round")

	trend, err := stats.Trend(ctx, 0)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute trend")
		return
	}
	if trend == nil {
		log.Info().Msg("Not enough rounds for a trend")
		return
	}
	log.Info().
		Str("headline", trend.Headline).
		Str("details", trend.Details).
		Msg("Trend")
}
