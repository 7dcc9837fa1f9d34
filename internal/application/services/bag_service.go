package services

import (
	"context"
	"sync"

	"golf_stats/internal/app"
	"golf_stats/internal/bag"

	"github.com/rs/zerolog/log"
)

// BagService edits the persisted bag. Edits are load-modify-save and are
// serialized within this process.
type BagService struct {
	storage *bag.Storage
	mutex   sync.Mutex
}

// BagView is a bag with its clubs grouped for display
type BagView struct {
	app.Bag
	Groups    map[app.ClubType][]app.Club `json:"groups"`
	OverLimit bool                        `json:"overLimit"`
}

// NewBagService creates a new bag service
func NewBagService(storage *bag.Storage) *BagService {
	return &BagService{storage: storage}
}

// Get returns the current bag; it never fails
func (s *BagService) Get(ctx context.Context) BagView {
	return newBagView(s.storage.Load(ctx))
}

// Replace saves bag as the whole new bag
func (s *BagService) Replace(ctx context.Context, b app.Bag) (BagView, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	saved, err := s.storage.Save(ctx, b)
	if err != nil {
		return BagView{}, err
	}
	return newBagView(saved), nil
}

// AddClub adds a club and saves the bag
func (s *BagService) AddClub(ctx context.Context, req bag.NewClub) (app.Club, BagView, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.storage.LoadForUpdate(ctx)
	if err != nil {
		return app.Club{}, BagView{}, err
	}

	updated, club, err := bag.AddClub(current, req)
	if err != nil {
		return app.Club{}, BagView{}, err
	}

	saved, err := s.storage.Save(ctx, updated)
	if err != nil {
		return app.Club{}, BagView{}, err
	}

	log.Info().
		Str("club_id", club.ID).
		Str("club_type", string(club.Type)).
		Int("clubs", len(saved.Clubs)).
		Msg("Added club to bag")

	return club, newBagView(saved), nil
}

// RemoveClub removes a club by id and saves the bag
func (s *BagService) RemoveClub(ctx context.Context, id string) (BagView, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.storage.LoadForUpdate(ctx)
	if err != nil {
		return BagView{}, err
	}

	updated, err := bag.RemoveClub(current, id)
	if err != nil {
		return BagView{}, err
	}

	saved, err := s.storage.Save(ctx, updated)
	if err != nil {
		return BagView{}, err
	}
	return newBagView(saved), nil
}

func newBagView(b app.Bag) BagView {
	return BagView{
		Bag:       b,
		Groups:    bag.GroupByType(b),
		OverLimit: bag.OverLimit(b),
	}
}
