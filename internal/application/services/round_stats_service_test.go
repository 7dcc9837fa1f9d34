package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/domain/round"
	"golf_stats/internal/store"
)

func intPtr(i int) *int { return &i }

func hole(n int, fairway *bool, gir bool, putts, score int) app.HoleStat {
	return app.HoleStat{Hole: n, FairwayHit: fairway, GreenInReg: gir, Putts: putts, Score: score}
}

func testRound(id string, day int, course string, fairwayHit bool, gir bool) app.Round {
	return app.Round{
		ID:     id,
		Date:   time.Date(2025, 8, day, 9, 0, 0, 0, time.UTC),
		Course: course,
		Holes: []app.HoleStat{
			hole(1, &fairwayHit, gir, 2, 4),
			hole(2, nil, true, 2, 3),
		},
	}
}

func newTestService(rounds ...app.Round) *RoundStatsService {
	return NewRoundStatsService(store.NewMemoryStore(rounds...), 0)
}

type errorStore struct{ err error }

func (e errorStore) ListRounds(ctx context.Context, limit int) ([]app.Round, error) {
	return nil, e.err
}

func (e errorStore) GetRoundByID(ctx context.Context, id string) (*app.Round, error) {
	return nil, e.err
}

func TestRoundStatsService_ListSummaries(t *testing.T) {
	svc := newTestService(
		testRound("a", 2, "Preakness Valley", false, false),
		testRound("b", 12, "Wayne CC", true, true),
		testRound("c", 20, "Packanack GC", true, false),
		app.Round{ID: "broken", Date: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), Course: "Wayne CC"},
	)
	ctx := context.Background()

	t.Run("DefaultSortMostRecentFirst", func(t *testing.T) {
		list, err := svc.ListSummaries(ctx, RoundQuery{})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if list.Count != 3 || list.Rounds[0].ID != "c" || list.Rounds[2].ID != "a" {
			t.Errorf("Unexpected rounds %+v", list.Rounds)
		}
		if len(list.Invalid) != 1 || list.Invalid[0].RoundID != "broken" {
			t.Errorf("Expected broken round reported, got %+v", list.Invalid)
		}
		if list.ActiveFilters != 0 {
			t.Errorf("Expected 0 active filters, got %d", list.ActiveFilters)
		}
	})

	t.Run("FilterSortLimit", func(t *testing.T) {
		q := RoundQuery{
			Filters: round.Filters{Query: "c"},
			Sort:    round.SortSpec{Key: round.SortByDate, Dir: round.SortAsc},
			Limit:   1,
		}
		list, err := svc.ListSummaries(ctx, q)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if list.Count != 1 || list.Rounds[0].ID != "b" {
			t.Errorf("Expected [b], got %+v", list.Rounds)
		}
		if list.ActiveFilters != 1 {
			t.Errorf("Expected 1 active filter, got %d", list.ActiveFilters)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		list, err := svc.ListSummaries(ctx, RoundQuery{Filters: round.Filters{ScoreMin: intPtr(100)}})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if list.Rounds == nil || list.Count != 0 {
			t.Errorf("Expected empty non-nil list, got %+v", list.Rounds)
		}
	})
}

func TestRoundStatsService_StoreError(t *testing.T) {
	svc := NewRoundStatsService(errorStore{err: errors.New("connection refused")}, 3)
	ctx := context.Background()

	if _, err := svc.ListSummaries(ctx, RoundQuery{}); err == nil {
		t.Error("Expected ListSummaries error")
	}
	if _, err := svc.Trend(ctx, 0); err == nil {
		t.Error("Expected Trend error")
	}
	if _, err := svc.LastRound(ctx); err == nil {
		t.Error("Expected LastRound error")
	}
	if _, _, err := svc.GetRound(ctx, "x"); err == nil {
		t.Error("Expected GetRound error")
	}
}

func TestRoundStatsService_Trend(t *testing.T) {
	// FIR: c=100%, b=100%, a=0%; GIR: c=50%, b=100%, a=50%
	svc := newTestService(
		testRound("a", 2, "Preakness Valley", false, false),
		testRound("b", 12, "Wayne CC", true, true),
		testRound("c", 20, "Packanack GC", true, false),
	)
	ctx := context.Background()

	trend, err := svc.Trend(ctx, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if trend == nil {
		t.Fatal("Expected a trend")
	}
	if trend.Headline != "Driving accuracy ↑ 100% last 3 rounds" {
		t.Errorf("Unexpected headline %q", trend.Headline)
	}
	if trend.Details != "FIR: 100% • GIR: 50% (most recent)" {
		t.Errorf("Unexpected details %q", trend.Details)
	}

	two, err := svc.Trend(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if two.Headline != "GIR ↓ 50% last 2 rounds" {
		t.Errorf("Unexpected 2-round headline %q", two.Headline)
	}
}

func TestRoundStatsService_TrendInsufficientData(t *testing.T) {
	svc := newTestService(testRound("only", 2, "Wayne CC", true, true))

	trend, err := svc.Trend(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if trend != nil {
		t.Errorf("Expected nil trend, got %+v", trend)
	}
}

func TestRoundStatsService_LastRound(t *testing.T) {
	svc := newTestService(
		testRound("a", 2, "Preakness Valley", false, false),
		testRound("c", 20, "Packanack GC", true, false),
	)

	last, err := svc.LastRound(context.Background())
	if err != nil || last == nil || last.ID != "c" {
		t.Errorf("Expected round c, got %v (err %v)", last, err)
	}

	empty, err := newTestService().LastRound(context.Background())
	if err != nil || empty != nil {
		t.Errorf("Expected (nil, nil) for empty store, got (%v, %v)", empty, err)
	}
}

func TestRoundStatsService_GetRound(t *testing.T) {
	svc := newTestService(
		testRound("a", 2, "Preakness Valley", false, false),
		app.Round{ID: "broken", Course: "Wayne CC"},
	)
	ctx := context.Background()

	r, summary, err := svc.GetRound(ctx, "a")
	if err != nil || r == nil || summary == nil {
		t.Fatalf("Expected round and summary, got %v %v (err %v)", r, summary, err)
	}
	if summary.Score != 7 || summary.Holes != 2 {
		t.Errorf("Unexpected summary %+v", summary)
	}

	r, summary, err = svc.GetRound(ctx, "missing")
	if err != nil || r != nil || summary != nil {
		t.Errorf("Expected all nil for unknown id, got %v %v %v", r, summary, err)
	}

	r, _, err = svc.GetRound(ctx, "broken")
	var verr *round.ValidationError
	if !errors.As(err, &verr) || r == nil {
		t.Errorf("Expected round with ValidationError, got %v (err %v)", r, err)
	}
}

func TestRoundStatsService_FilterOptions(t *testing.T) {
	svc := newTestService(
		testRound("a", 2, "Wayne CC", false, false),
		testRound("b", 3, "Packanack GC", false, false),
		testRound("c", 4, "Wayne CC", false, false),
	)

	options, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(options.Courses) != 2 || options.Courses[0] != "Packanack GC" {
		t.Errorf("Unexpected courses %v", options.Courses)
	}
}
