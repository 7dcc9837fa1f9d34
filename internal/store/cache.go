package store

import (
	"context"
	"sync"
	"time"

	"golf_stats/internal/app"

	"github.com/rs/zerolog/log"
)

// CachedStore wraps a RoundStore with a TTL cache of the full round list.
// Lookups by id are served from the cached list when it is fresh.
type CachedStore struct {
	store RoundStore
	ttl   time.Duration
	now   func() time.Time
	mutex sync.RWMutex

	rounds *cachedRounds
	hits   int
	misses int
}

type cachedRounds struct {
	data      []app.Round
	timestamp time.Time
}

// NewCachedStore creates a caching wrapper around a RoundStore
func NewCachedStore(store RoundStore, ttl time.Duration) *CachedStore {
	return &CachedStore{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// ListRounds returns cached rounds or fetches the full list from the underlying store
func (c *CachedStore) ListRounds(ctx context.Context, limit int) ([]app.Round, error) {
	rounds, err := c.all(ctx)
	if err != nil {
		return nil, err
	}

	limited := applyLimit(rounds, limit)
	out := make([]app.Round, len(limited))
	for i, r := range limited {
		out[i] = cloneRound(r)
	}
	return out, nil
}

// GetRoundByID looks the round up in the cached list
func (c *CachedStore) GetRoundByID(ctx context.Context, id string) (*app.Round, error) {
	rounds, err := c.all(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range rounds {
		if r.ID == id {
			found := cloneRound(r)
			return &found, nil
		}
	}
	return nil, nil
}

func (c *CachedStore) all(ctx context.Context) ([]app.Round, error) {
	c.mutex.RLock()
	cached := c.rounds
	c.mutex.RUnlock()

	if cached != nil && c.now().Sub(cached.timestamp) < c.ttl {
		c.mutex.Lock()
		c.hits++
		c.mutex.Unlock()

		log.Debug().
			Dur("cache_age", c.now().Sub(cached.timestamp)).
			Int("rounds", len(cached.data)).
			Msg("Using cached rounds")
		return cached.data, nil
	}

	log.Debug().Dur("cache_ttl", c.ttl).Msg("Fetching fresh rounds from store")
	data, err := c.store.ListRounds(ctx, 0)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.misses++
	c.rounds = &cachedRounds{
		data:      data,
		timestamp: c.now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// ClearCache invalidates the cached round list
func (c *CachedStore) ClearCache() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.rounds = nil
	log.Info().Msg("Round cache cleared")
}

// CacheStats represents cache statistics
type CacheStats struct {
	Hits   int  `json:"hits"`
	Misses int  `json:"misses"`
	Fresh  bool `json:"fresh"`
}

// GetCacheStats returns hit/miss counts and whether the cached list is still fresh
func (c *CachedStore) GetCacheStats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return CacheStats{
		Hits:   c.hits,
		Misses: c.misses,
		Fresh:  c.rounds != nil && c.now().Sub(c.rounds.timestamp) < c.ttl,
	}
}
