package store

import (
	"context"
	"sync"
	"time"

	"golf_stats/internal/app"
)

// MemoryStore keeps rounds in memory
type MemoryStore struct {
	mutex  sync.RWMutex
	rounds []app.Round
}

// NewMemoryStore creates a store holding copies of the given rounds
func NewMemoryStore(rounds ...app.Round) *MemoryStore {
	s := &MemoryStore{rounds: make([]app.Round, 0, len(rounds))}
	for _, r := range rounds {
		s.rounds = append(s.rounds, cloneRound(r))
	}
	SortMostRecentFirst(s.rounds)
	return s
}

// ListRounds returns up to limit rounds, most recent first
func (s *MemoryStore) ListRounds(ctx context.Context, limit int) ([]app.Round, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rounds := applyLimit(s.rounds, limit)
	out := make([]app.Round, len(rounds))
	for i, r := range rounds {
		out[i] = cloneRound(r)
	}
	return out, nil
}

// GetRoundByID returns the round with the given id, or nil when unknown
func (s *MemoryStore) GetRoundByID(ctx context.Context, id string) (*app.Round, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, r := range s.rounds {
		if r.ID == id {
			found := cloneRound(r)
			return &found, nil
		}
	}
	return nil, nil
}

// cloneRound deep-copies the holes and every optional field so callers cannot
// mutate stored rounds
func cloneRound(r app.Round) app.Round {
	holes := make([]app.HoleStat, len(r.Holes))
	for i, h := range r.Holes {
		holes[i] = h
		if h.FairwayHit != nil {
			hit := *h.FairwayHit
			holes[i].FairwayHit = &hit
		}
	}
	r.Holes = holes
	r.Slope = copyIntPtr(r.Slope)
	r.Par = copyIntPtr(r.Par)
	r.Rating = copyFloatPtr(r.Rating)
	r.PlayerHcp = copyFloatPtr(r.PlayerHcp)
	return r
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// SampleRounds returns a fixed set of rounds for local development and demos
func SampleRounds() []app.Round {
	hcp12, hcp13 := 12.0, 13.0
	par71, par72 := 71, 72
	slope, rating := 128, 71.4

	return []app.Round{
		{
			ID:        "r3",
			Date:      time.Date(2025, 8, 20, 14, 10, 0, 0, time.UTC),
			Course:    "Packanack GC",
			Tees:      "White",
			Slope:     &slope,
			Rating:    &rating,
			Par:       &par72,
			MatchType: "Stroke",
			Result:    "N/A",
			Holes:     sampleHoles([]int{3, 8, 12, 16}, "HMHHMHHMHHHMHMHHMH", "GGNGNNGGNGNGGNNGGN", "212122121221122121", "454354545443545454"),
			PlayerHcp: &hcp12,
			Notes:     "Solid back nine; wedges felt great.",
		},
		{
			ID:        "r2",
			Date:      time.Date(2025, 8, 12, 13, 30, 0, 0, time.UTC),
			Course:    "Wayne CC",
			Par:       &par71,
			MatchType: "Match",
			Result:    "Win",
			Holes:     sampleHoles([]int{3, 7, 11, 15}, "HMHMHHMHMHMMHHMHMH", "NGNGNNGNGNNGNGNNGN", "222122212212221222", "545455454545554545"),
			PlayerHcp: &hcp12,
		},
		{
			ID:        "r1",
			Date:      time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC),
			Course:    "Preakness Valley",
			Tees:      "Blue",
			Par:       &par72,
			MatchType: "Practice",
			Holes:     sampleHoles([]int{2, 6, 13, 17}, "MMHMHMMHMHMMMHMHMM", "NNGNNGNNGNNNGNNGNN", "222222122222122221", "555545555455545555"),
			PlayerHcp: &hcp13,
		},
	}
}

// sampleHoles builds an 18-hole card from per-hole pattern strings.
// fairways uses H (hit) or M (miss); holes listed in par3s get no fairway.
// greens uses G or N; putts and scores are single digits.
func sampleHoles(par3s []int, fairways, greens, putts, scores string) []app.HoleStat {
	isPar3 := make(map[int]bool, len(par3s))
	for _, h := range par3s {
		isPar3[h] = true
	}

	holes := make([]app.HoleStat, len(scores))
	for i := range holes {
		number := i + 1
		holes[i] = app.HoleStat{
			Hole:       number,
			GreenInReg: greens[i] == 'G',
			Putts:      int(putts[i] - '0'),
			Score:      int(scores[i] - '0'),
		}
		if !isPar3[number] {
			hit := fairways[i] == 'H'
			holes[i].FairwayHit = &hit
		}
	}
	return holes
}
