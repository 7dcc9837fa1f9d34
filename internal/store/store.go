package store

import (
	"context"
	"sort"

	"golf_stats/internal/app"
)

// RoundStore supplies completed rounds to the statistics core.
// Implementations can back this with in-memory data, PostgreSQL, Google Sheets
// or any other provider.
type RoundStore interface {
	// ListRounds returns up to limit rounds, most recent first. A limit <= 0 returns all rounds.
	ListRounds(ctx context.Context, limit int) ([]app.Round, error)

	// GetRoundByID returns the round with the given id, or (nil, nil) when there is none.
	GetRoundByID(ctx context.Context, id string) (*app.Round, error)
}

// SortMostRecentFirst orders rounds by date descending, keeping input order for equal dates
func SortMostRecentFirst(rounds []app.Round) {
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Date.After(rounds[j].Date)
	})
}

// applyLimit truncates rounds to limit when limit is positive
func applyLimit(rounds []app.Round, limit int) []app.Round {
	if limit > 0 && len(rounds) > limit {
		return rounds[:limit]
	}
	return rounds
}
