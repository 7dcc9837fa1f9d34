package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"golf_stats/internal/app"
	"golf_stats/internal/config"
	"golf_stats/internal/domain/round"
	"golf_stats/internal/sheets/mocks"
)

var fastRetry = config.RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1}

func newTestStore(api *mocks.MockSheetsAPI) *RoundStore {
	s := NewRoundStore(api, "sheet-id")
	s.retry = fastRetry
	return s
}

func seededAPI() *mocks.MockSheetsAPI {
	api := mocks.NewMockSheetsAPI()
	api.Ranges[roundsRange] = [][]interface{}{
		{"r1", "2025-08-02", "Preakness Valley", "Blue", "", "", 72.0, "Practice", "", 13.0},
		{"r2", "2025-08-12T13:30:00Z", "Wayne CC", "", 125.0, 70.1, 71.0, "Match", "Win", "", "windy"},
		{"", "2025-08-13", "No Id GC"},
		{"r4", "someday", "Bad Date CC"},
		{"r1", "2025-08-14", "Duplicate GC"},
	}
	api.Ranges[holesRange] = [][]interface{}{
		{"r1", 1.0, "Y", "Y", 2.0, 4.0},
		{"r1", 2.0, "", "N", 2.0, 3.0},
		{"r2", 1.0, "N", "N", 3.0, 6.0},
		{"ghost", 1.0, "Y", "Y", 1.0, 3.0},
	}
	return api
}

func TestRoundStore_ListRounds(t *testing.T) {
	s := newTestStore(seededAPI())

	rounds, err := s.ListRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(rounds) != 2 {
		t.Fatalf("Expected 2 readable rounds, got %d", len(rounds))
	}
	if rounds[0].ID != "r2" || rounds[1].ID != "r1" {
		t.Errorf("Expected most recent first [r2 r1], got [%s %s]", rounds[0].ID, rounds[1].ID)
	}

	r2 := rounds[0]
	if r2.Slope == nil || *r2.Slope != 125 || r2.Rating == nil || *r2.Rating != 70.1 {
		t.Errorf("Unexpected slope/rating %v/%v", r2.Slope, r2.Rating)
	}
	if r2.PlayerHcp != nil {
		t.Errorf("Expected no handicap, got %v", *r2.PlayerHcp)
	}
	if r2.MatchType != "Match" || r2.Result != "Win" || r2.Notes != "windy" {
		t.Errorf("Unexpected text fields %+v", r2)
	}

	r1 := rounds[1]
	if r1.Course != "Preakness Valley" || r1.Notes != "" {
		t.Errorf("Expected first r1 row to win over the duplicate, got %+v", r1)
	}
	if len(r1.Holes) != 2 {
		t.Fatalf("Expected 2 holes for r1, got %d", len(r1.Holes))
	}
	if r1.Holes[0].FairwayHit == nil || !*r1.Holes[0].FairwayHit {
		t.Error("Expected hole 1 fairway hit")
	}
	if r1.Holes[1].FairwayHit != nil {
		t.Error("Expected blank fairway cell to mean no fairway target")
	}
	if r1.PlayerHcp == nil || *r1.PlayerHcp != 13 {
		t.Errorf("Expected handicap 13, got %v", r1.PlayerHcp)
	}
}

func TestRoundStore_SummarizesParsedRounds(t *testing.T) {
	s := newTestStore(seededAPI())

	r, err := s.GetRoundByID(context.Background(), "r1")
	if err != nil || r == nil {
		t.Fatalf("Expected round r1, got %v (err %v)", r, err)
	}

	summary, err := round.Summarize(*r)
	if err != nil {
		t.Fatalf("Expected valid round, got %v", err)
	}
	if summary.FIRPct != 1 || summary.GIRPct != 0.5 || summary.Score != 7 {
		t.Errorf("Unexpected summary %+v", summary)
	}
}

func TestRoundStore_Limit(t *testing.T) {
	s := newTestStore(seededAPI())

	rounds, err := s.ListRounds(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rounds) != 1 || rounds[0].ID != "r2" {
		t.Errorf("Expected [r2], got %v", rounds)
	}
}

func TestRoundStore_GetRoundByID_Unknown(t *testing.T) {
	s := newTestStore(seededAPI())

	r, err := s.GetRoundByID(context.Background(), "missing")
	if err != nil || r != nil {
		t.Errorf("Expected (nil, nil), got (%v, %v)", r, err)
	}
}

func TestRoundStore_RetriesTransientReadErrors(t *testing.T) {
	api := seededAPI()
	api.ReadSheetError = errors.New("503 backend error")
	api.ReadSheetFailN = 1
	s := newTestStore(api)

	rounds, err := s.ListRounds(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected retry to recover, got %v", err)
	}
	if len(rounds) != 2 {
		t.Errorf("Expected 2 rounds, got %d", len(rounds))
	}
}

func TestRoundStore_ReadErrorPropagates(t *testing.T) {
	api := seededAPI()
	api.ReadSheetError = errors.New("403 forbidden")
	s := newTestStore(api)

	if _, err := s.ListRounds(context.Background(), 0); err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if api.ReadSheetCalls != fastRetry.MaxAttempts {
		t.Errorf("Expected %d read attempts, got %d", fastRetry.MaxAttempts, api.ReadSheetCalls)
	}
}

func TestRoundStore_EnsureSheets(t *testing.T) {
	api := mocks.NewMockSheetsAPI()
	api.ExistingSheets[RoundsSheet] = true
	s := newTestStore(api)

	if err := s.EnsureSheets(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(api.CreatedSheets) != 1 || api.CreatedSheets[0] != HolesSheet {
		t.Errorf("Expected only the Holes sheet created, got %v", api.CreatedSheets)
	}
	if header := api.Updated[HolesSheet+"!A1"]; len(header) != 1 || len(header[0]) != 6 {
		t.Errorf("Expected 6-column header row, got %v", header)
	}
}

func TestRoundStore_AppendRound(t *testing.T) {
	api := mocks.NewMockSheetsAPI()
	s := newTestStore(api)
	hit := false
	hcp := 12.0

	r := app.Round{
		ID:        "new",
		Date:      time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC),
		Course:    "Bethpage Red",
		PlayerHcp: &hcp,
		Holes: []app.HoleStat{
			{Hole: 1, FairwayHit: &hit, GreenInReg: true, Putts: 2, Score: 4},
			{Hole: 2, GreenInReg: false, Putts: 1, Score: 3},
		},
	}

	if err := s.AppendRound(context.Background(), r); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	roundRows := api.Appended[RoundsSheet+"!A:K"]
	if len(roundRows) != 1 || roundRows[0][0] != "new" || roundRows[0][9] != 12.0 {
		t.Errorf("Unexpected round rows %v", roundRows)
	}
	holeRows := api.Appended[HolesSheet+"!A:F"]
	if len(holeRows) != 2 {
		t.Fatalf("Expected 2 hole rows, got %d", len(holeRows))
	}
	if holeRows[0][2] != "N" || holeRows[1][2] != "" || holeRows[0][3] != "Y" {
		t.Errorf("Unexpected hole encoding %v", holeRows)
	}

	// Round trip through the reader
	api.Ranges[roundsRange] = roundRows
	api.Ranges[holesRange] = holeRows
	back, err := s.GetRoundByID(context.Background(), "new")
	if err != nil || back == nil {
		t.Fatalf("Expected appended round to be readable, got %v (err %v)", back, err)
	}
	if !back.Date.Equal(r.Date) || len(back.Holes) != 2 || back.Holes[1].FairwayHit != nil {
		t.Errorf("Round trip mismatch: %+v", back)
	}
}

func TestRoundStore_AppendRound_RejectsInvalid(t *testing.T) {
	api := mocks.NewMockSheetsAPI()
	s := newTestStore(api)

	err := s.AppendRound(context.Background(), app.Round{ID: "empty", Course: "X"})

	var vErr *round.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(api.Appended) != 0 {
		t.Error("Expected nothing appended for an invalid round")
	}
}
