package bag

import (
	"context"
	"errors"
	"testing"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/config"
	"golf_stats/internal/kv"
)

var fixedNow = time.Date(2025, 8, 23, 14, 10, 0, 0, time.UTC)

func newTestStorage(store kv.Store) *Storage {
	s := NewStorage(store)
	s.now = func() time.Time { return fixedNow }
	s.retry = config.RetryConfig{MaxAttempts: 2, InitialWait: time.Millisecond, Multiplier: 1}
	return s
}

type failingStore struct {
	getErr  error
	setErr  error
	setCall int
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", f.getErr
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	f.setCall++
	return f.setErr
}

func TestStorage_LoadFallsBackToEmptyBag(t *testing.T) {
	tests := []struct {
		name  string
		store kv.Store
		raw   string
	}{
		{"MissingKey", kv.NewMemoryStore(), ""},
		{"ReadError", &failingStore{getErr: errors.New("disk error")}, ""},
		{"InvalidJSON", kv.NewMemoryStore(), "{not json"},
		{"MissingClubs", kv.NewMemoryStore(), `{"updatedAt": 5}`},
		{"NullClubs", kv.NewMemoryStore(), `{"updatedAt": 5, "clubs": null}`},
		{"UnknownClubType", kv.NewMemoryStore(), `{"updatedAt": 5, "clubs": [{"id": "x-1", "type": "Driver", "label": "Big Stick"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.raw != "" {
				_ = tt.store.Set(context.Background(), Key, tt.raw)
			}

			bag := newTestStorage(tt.store).Load(context.Background())

			if bag.Clubs == nil || len(bag.Clubs) != 0 {
				t.Errorf("Expected empty non-nil clubs, got %v", bag.Clubs)
			}
			if bag.UpdatedAt != fixedNow.UnixMilli() {
				t.Errorf("Expected UpdatedAt %d, got %d", fixedNow.UnixMilli(), bag.UpdatedAt)
			}
		})
	}
}

func TestStorage_LoadEmptyClubsList(t *testing.T) {
	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), Key, `{"updatedAt": 42, "clubs": []}`)

	bag := newTestStorage(store).Load(context.Background())

	if bag.UpdatedAt != 42 || len(bag.Clubs) != 0 {
		t.Errorf("Expected stored empty bag with UpdatedAt 42, got %+v", bag)
	}
}

func TestStorage_SaveAndLoad(t *testing.T) {
	store := kv.NewMemoryStore()
	s := newTestStorage(store)
	ctx := context.Background()

	in := app.Bag{
		UpdatedAt: 1,
		Clubs: []app.Club{
			{ID: "driver-1", Type: app.ClubWood, Label: "Driver", Loft: "10.5°"},
			{ID: "putter-1", Type: app.ClubPutter, Label: "Putter"},
		},
	}

	saved, err := s.Save(ctx, in)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if saved.UpdatedAt != fixedNow.UnixMilli() {
		t.Errorf("Expected UpdatedAt stamped to %d, got %d", fixedNow.UnixMilli(), saved.UpdatedAt)
	}

	loaded := s.Load(ctx)
	if loaded.UpdatedAt != saved.UpdatedAt || len(loaded.Clubs) != 2 {
		t.Fatalf("Loaded bag differs from saved: %+v", loaded)
	}
	if loaded.Clubs[0].Loft != "10.5°" || loaded.Clubs[1].Type != app.ClubPutter {
		t.Errorf("Unexpected clubs %+v", loaded.Clubs)
	}
}

func TestStorage_SaveNilClubs(t *testing.T) {
	store := kv.NewMemoryStore()
	s := newTestStorage(store)

	if _, err := s.Save(context.Background(), app.Bag{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, _ := store.Get(context.Background(), Key)
	if raw != `{"updatedAt":1755958200000,"clubs":[]}` {
		t.Errorf("Unexpected stored document %s", raw)
	}
}

func TestStorage_SaveRejectsInvalidClub(t *testing.T) {
	store := &failingStore{}
	s := newTestStorage(store)

	_, err := s.Save(context.Background(), app.Bag{Clubs: []app.Club{{ID: "x", Type: "Driver", Label: "X"}}})

	if !errors.Is(err, ErrInvalidClub) {
		t.Errorf("Expected ErrInvalidClub, got %v", err)
	}
	if store.setCall != 0 {
		t.Error("Expected no write for an invalid bag")
	}
}

func TestStorage_SaveReturnsWriteError(t *testing.T) {
	store := &failingStore{setErr: errors.New("quota exceeded")}
	s := newTestStorage(store)

	if _, err := s.Save(context.Background(), app.Bag{}); err == nil {
		t.Fatal("Expected write error")
	}
	if store.setCall != 2 {
		t.Errorf("Expected 2 write attempts, got %d", store.setCall)
	}
}

func TestStorage_LoadForUpdate(t *testing.T) {
	stored := kv.NewMemoryStore()
	_ = stored.Set(context.Background(), Key, `{"updatedAt": 42, "clubs": [{"id": "putter-1", "type": "Putter", "label": "Putter"}]}`)
	malformed := kv.NewMemoryStore()
	_ = malformed.Set(context.Background(), Key, "{not json")

	tests := []struct {
		name          string
		store         kv.Store
		expectErr     bool
		expectedClubs int
	}{
		{"StoredBag", stored, false, 1},
		{"MissingKey", kv.NewMemoryStore(), false, 0},
		{"MalformedDocument", malformed, false, 0},
		{"ReadError", &failingStore{getErr: errors.New("connection reset")}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag, err := newTestStorage(tt.store).LoadForUpdate(context.Background())
			if tt.expectErr {
				if err == nil {
					t.Fatalf("Expected read error, got bag %+v", bag)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(bag.Clubs) != tt.expectedClubs {
				t.Errorf("Expected %d clubs, got %+v", tt.expectedClubs, bag.Clubs)
			}
		})
	}
}

func TestStorage_LoadForUpdateRetriesReads(t *testing.T) {
	store := &flakyGetStore{Store: kv.NewMemoryStore(), failures: 1}
	_ = store.Set(context.Background(), Key, `{"updatedAt": 42, "clubs": []}`)

	bag, err := newTestStorage(store).LoadForUpdate(context.Background())
	if err != nil {
		t.Fatalf("Expected recovery on second attempt, got %v", err)
	}
	if bag.UpdatedAt != 42 {
		t.Errorf("Expected stored bag, got %+v", bag)
	}
}

type flakyGetStore struct {
	kv.Store
	failures int
}

func (f *flakyGetStore) Get(ctx context.Context, key string) (string, error) {
	if f.failures > 0 {
		f.failures--
		return "", errors.New("temporary read failure")
	}
	return f.Store.Get(ctx, key)
}
