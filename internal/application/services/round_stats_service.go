package services

import (
	"context"
	"fmt"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/domain/round"
	"golf_stats/internal/store"

	"github.com/rs/zerolog/log"
)

// RoundStatsService loads rounds from a store and runs them through the
// summarizer, filter/sort engine and trend analyzer.
type RoundStatsService struct {
	store       store.RoundStore
	trendWindow int
}

// NewRoundStatsService creates a new round statistics service
func NewRoundStatsService(roundStore store.RoundStore, trendWindow int) *RoundStatsService {
	if trendWindow <= 0 {
		trendWindow = round.DefaultTrendWindow
	}
	return &RoundStatsService{
		store:       roundStore,
		trendWindow: trendWindow,
	}
}

// RoundQuery selects, orders and truncates round summaries
type RoundQuery struct {
	Filters round.Filters
	Sort    round.SortSpec
	Limit   int
}

// InvalidRound identifies a stored round that could not be summarized
type InvalidRound struct {
	RoundID string `json:"roundId"`
	Field   string `json:"field"`
	Reason  string `json:"reason"`
}

// RoundList is the result of a summary query
type RoundList struct {
	Rounds        []app.RoundSummary `json:"rounds"`
	Count         int                `json:"count"`
	ActiveFilters int                `json:"activeFilters"`
	Invalid       []InvalidRound     `json:"invalid"`
}

// ListSummaries returns the filtered and sorted summaries of all valid rounds.
// Invalid rounds are skipped and reported in the result.
func (s *RoundStatsService) ListSummaries(ctx context.Context, q RoundQuery) (*RoundList, error) {
	summaries, invalid, err := s.loadSummaries(ctx)
	if err != nil {
		return nil, err
	}

	spec := q.Sort
	if spec.Key == "" {
		spec = round.DefaultSort
	}

	result := round.SortRounds(round.FilterRounds(summaries, q.Filters), spec)
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}

	return &RoundList{
		Rounds:        result,
		Count:         len(result),
		ActiveFilters: round.CountActiveFilters(q.Filters),
		Invalid:       invalid,
	}, nil
}

// Trend compares the most recent rounds. A window <= 0 uses the configured default.
// Returns nil when there are fewer than two valid rounds.
func (s *RoundStatsService) Trend(ctx context.Context, window int) (*app.TrendSnapshot, error) {
	if window <= 0 {
		window = s.trendWindow
	}

	summaries, _, err := s.loadSummaries(ctx)
	if err != nil {
		return nil, err
	}

	return round.CalculateTrendSnapshot(round.RecentFirst(summaries, window), window), nil
}

// LastRound returns the summary of the most recent valid round, or nil when there is none
func (s *RoundStatsService) LastRound(ctx context.Context) (*app.RoundSummary, error) {
	summaries, _, err := s.loadSummaries(ctx)
	if err != nil {
		return nil, err
	}

	recent := round.RecentFirst(summaries, 1)
	if len(recent) == 0 {
		return nil, nil
	}
	return &recent[0], nil
}

// FilterOptions lists the values present in the stored rounds
func (s *RoundStatsService) FilterOptions(ctx context.Context) (round.FilterOptions, error) {
	summaries, _, err := s.loadSummaries(ctx)
	if err != nil {
		return round.FilterOptions{}, err
	}
	return round.BuildFilterOptions(summaries), nil
}

// GetRound returns a round and its summary. Both are nil when the id is unknown.
// A round that fails validation is returned with a *round.ValidationError.
func (s *RoundStatsService) GetRound(ctx context.Context, id string) (*app.Round, *app.RoundSummary, error) {
	r, err := s.store.GetRoundByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get round %s: %w", id, err)
	}
	if r == nil {
		return nil, nil, nil
	}

	summary, err := round.Summarize(*r)
	if err != nil {
		return r, nil, err
	}
	return r, &summary, nil
}

func (s *RoundStatsService) loadSummaries(ctx context.Context) ([]app.RoundSummary, []InvalidRound, error) {
	start := time.Now()

	rounds, err := s.store.ListRounds(ctx, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	summaries, validationErrors := round.SummarizeAll(rounds)

	invalid := make([]InvalidRound, 0, len(validationErrors))
	for _, verr := range validationErrors {
		log.Warn().
			Str("round_id", verr.RoundID).
			Str("field", verr.Field).
			Str("reason", verr.Reason).
			Msg("Skipping invalid round")
		invalid = append(invalid, InvalidRound{RoundID: verr.RoundID, Field: verr.Field, Reason: verr.Reason})
	}

	log.Debug().
		Int("rounds", len(rounds)).
		Int("summarized", len(summaries)).
		Int("invalid", len(invalid)).
		Dur("duration", time.Since(start)).
		Msg("Loaded round summaries")

	return summaries, invalid, nil
}
