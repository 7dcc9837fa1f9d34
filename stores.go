package main

import (
	"context"
	"fmt"

	"golf_stats/internal/app"
	"golf_stats/internal/kv"
	"golf_stats/internal/sheets"
	"golf_stats/internal/store"

	"github.com/rs/zerolog/log"
)

// newRoundStore builds the configured round store, wrapped in a TTL cache
// when ROUND_CACHE_TTL is positive. The returned func releases resources.
func newRoundStore(ctx context.Context, config *app.Config) (store.RoundStore, func(), error) {
	var (
		roundStore store.RoundStore
		closeFn    = func() {}
	)

	switch config.RoundStore {
	case app.RoundStorePostgres:
		pg, err := store.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Ping(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		roundStore = pg
		closeFn = func() { pg.Close() }

	case app.RoundStoreSheets:
		client, err := sheets.NewClient(ctx, config.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		roundStore = sheets.NewRoundStore(client, config.SpreadsheetID)

	default:
		roundStore = store.NewMemoryStore(store.SampleRounds()...)
		log.Info().Msg("Using in-memory sample rounds")
	}

	if config.RoundCacheTTL > 0 && config.RoundStore != app.RoundStoreMemory {
		roundStore = store.NewCachedStore(roundStore, config.RoundCacheTTL)
	}

	return roundStore, closeFn, nil
}

// newKVStore builds the configured key-value store for the bag
func newKVStore(ctx context.Context, config *app.Config) (kv.Store, func(), error) {
	switch config.BagStore {
	case app.BagStoreRedis:
		r, err := kv.NewRedisStore(ctx, config.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil

	case app.BagStoreSQLite:
		s, err := kv.NewSQLiteStore(ctx, config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil

	default:
		return kv.NewMemoryStore(), func() {}, nil
	}
}

// seedRoundStore creates the schema (or sheet tabs) and writes the sample rounds
func seedRoundStore(ctx context.Context, config *app.Config) error {
	rounds := store.SampleRounds()

	switch config.RoundStore {
	case app.RoundStorePostgres:
		pg, err := store.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.Migrate(ctx); err != nil {
			return err
		}
		for _, r := range rounds {
			if err := pg.SaveRound(ctx, r); err != nil {
				return err
			}
		}

	case app.RoundStoreSheets:
		client, err := sheets.NewClient(ctx, config.CredentialsFile)
		if err != nil {
			return err
		}
		sheetStore := sheets.NewRoundStore(client, config.SpreadsheetID)

		if err := sheetStore.EnsureSheets(ctx); err != nil {
			return err
		}
		for _, r := range rounds {
			if err := sheetStore.AppendRound(ctx, r); err != nil {
				return err
			}
		}

	default:
		log.Info().Msg("Memory store is always seeded; nothing to do")
		return nil
	}

	log.Info().
		Str("round_store", config.RoundStore).
		Int("rounds", len(rounds)).
		Msg("Seeded round store")
	return nil
}
