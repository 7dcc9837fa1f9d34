package bag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/config"
	"golf_stats/internal/kv"
	"golf_stats/internal/retry"

	"github.com/rs/zerolog/log"
)

// Key is the storage key of the persisted bag document
const Key = "golfapp:bag:v1"

// Storage loads and saves the bag as one JSON document in a key-value store
type Storage struct {
	store kv.Store
	retry config.RetryConfig
	now   func() time.Time
}

// NewStorage creates bag storage on top of store
func NewStorage(store kv.Store) *Storage {
	return &Storage{
		store: store,
		retry: config.DefaultResilienceConfig.StoreWrite,
		now:   time.Now,
	}
}

// storedBag distinguishes a missing clubs field from an empty one
type storedBag struct {
	UpdatedAt int64       `json:"updatedAt"`
	Clubs     *[]app.Club `json:"clubs"`
}

// Load returns the saved bag. It never fails: a missing key, a read error or
// a malformed document all yield an empty bag.
func (s *Storage) Load(ctx context.Context) app.Bag {
	bag, err := s.LoadForUpdate(ctx)
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("Failed to read bag, using empty bag")
		return s.emptyBag()
	}
	return bag
}

// LoadForUpdate returns the saved bag for a load-modify-save edit. A missing
// key or a malformed document yields an empty bag, but a read error is
// returned so the edit does not overwrite a bag it could not see.
func (s *Storage) LoadForUpdate(ctx context.Context) (app.Bag, error) {
	var raw string
	err := retry.Do(ctx, s.retry, "load bag", func(ctx context.Context) error {
		var err error
		raw, err = s.store.Get(ctx, Key)
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return app.Bag{}, fmt.Errorf("read bag: %w", err)
	}
	if raw == "" {
		return s.emptyBag(), nil
	}

	bag, err := decodeBag(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("Stored bag is malformed, using empty bag")
		return s.emptyBag(), nil
	}
	return bag, nil
}

// Save stamps UpdatedAt with the current time and writes the bag
func (s *Storage) Save(ctx context.Context, bag app.Bag) (app.Bag, error) {
	if bag.Clubs == nil {
		bag.Clubs = []app.Club{}
	}
	for _, c := range bag.Clubs {
		if err := validateClub(c); err != nil {
			return app.Bag{}, err
		}
	}

	bag.UpdatedAt = s.now().UnixMilli()
	data, err := json.Marshal(bag)
	if err != nil {
		return app.Bag{}, fmt.Errorf("encode bag: %w", err)
	}

	err = retry.Do(ctx, s.retry, "save bag", func(ctx context.Context) error {
		return s.store.Set(ctx, Key, string(data))
	})
	if err != nil {
		return app.Bag{}, err
	}

	if OverLimit(bag) {
		log.Warn().
			Int("clubs", len(bag.Clubs)).
			Int("limit", MaxClubs).
			Msg("Saved bag exceeds the club limit")
	}
	return bag, nil
}

func (s *Storage) emptyBag() app.Bag {
	return app.Bag{UpdatedAt: s.now().UnixMilli(), Clubs: []app.Club{}}
}

func decodeBag(raw string) (app.Bag, error) {
	var stored storedBag
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return app.Bag{}, fmt.Errorf("decode bag: %w", err)
	}
	if stored.Clubs == nil {
		return app.Bag{}, fmt.Errorf("decode bag: missing clubs")
	}
	for _, c := range *stored.Clubs {
		if err := validateClub(c); err != nil {
			return app.Bag{}, err
		}
	}
	return app.Bag{UpdatedAt: stored.UpdatedAt, Clubs: *stored.Clubs}, nil
}
