package sheets

import (
	"context"
	"fmt"

	"golf_stats/internal/app"
	"golf_stats/internal/config"
	"golf_stats/internal/domain/round"
	"golf_stats/internal/retry"
	"golf_stats/internal/store"

	"github.com/rs/zerolog/log"
)

const (
	RoundsSheet = "Rounds"
	HolesSheet  = "Holes"

	roundsRange = RoundsSheet + "!A2:K"
	holesRange  = HolesSheet + "!A2:F"
)

var (
	roundsHeader = []interface{}{"ID", "Date", "Course", "Tees", "Slope", "Rating", "Par", "Match Type", "Result", "Handicap", "Notes"}
	holesHeader  = []interface{}{"Round ID", "Hole", "Fairway", "GIR", "Putts", "Score"}
)

// RoundStore reads rounds from a spreadsheet with a Rounds tab and a Holes tab.
// Rows with an empty id or an unparseable date are skipped with a warning.
type RoundStore struct {
	api           SheetsAPI
	spreadsheetID string
	retry         config.RetryConfig
}

// NewRoundStore creates a spreadsheet-backed round store
func NewRoundStore(api SheetsAPI, spreadsheetID string) *RoundStore {
	return &RoundStore{
		api:           api,
		spreadsheetID: spreadsheetID,
		retry:         config.DefaultResilienceConfig.StoreRead,
	}
}

// ListRounds returns up to limit rounds, most recent first
func (s *RoundStore) ListRounds(ctx context.Context, limit int) ([]app.Round, error) {
	rounds, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	store.SortMostRecentFirst(rounds)
	if limit > 0 && len(rounds) > limit {
		rounds = rounds[:limit]
	}
	return rounds, nil
}

// GetRoundByID returns the round with the given id, or nil when unknown
func (s *RoundStore) GetRoundByID(ctx context.Context, id string) (*app.Round, error) {
	rounds, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range rounds {
		if rounds[i].ID == id {
			return &rounds[i], nil
		}
	}
	return nil, nil
}

// EnsureSheets creates the Rounds and Holes tabs with header rows when they are missing
func (s *RoundStore) EnsureSheets(ctx context.Context) error {
	tabs := []struct {
		name   string
		header []interface{}
	}{
		{RoundsSheet, roundsHeader},
		{HolesSheet, holesHeader},
	}

	for _, tab := range tabs {
		exists, err := s.api.SheetExists(ctx, s.spreadsheetID, tab.name)
		if err != nil {
			return fmt.Errorf("failed to check sheet %s: %w", tab.name, err)
		}
		if exists {
			continue
		}

		log.Info().Str("sheet_name", tab.name).Msg("Creating sheet")
		if err := s.api.CreateSheet(ctx, s.spreadsheetID, tab.name); err != nil {
			return err
		}
		if err := s.api.UpdateRange(ctx, s.spreadsheetID, tab.name+"!A1", [][]interface{}{tab.header}); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", tab.name, err)
		}
	}
	return nil
}

// AppendRound writes a round row and its hole rows
func (s *RoundStore) AppendRound(ctx context.Context, r app.Round) error {
	if err := round.ValidateRound(r); err != nil {
		return err
	}

	if err := s.api.AppendRows(ctx, s.spreadsheetID, RoundsSheet+"!A:K", [][]interface{}{roundRow(r)}); err != nil {
		return fmt.Errorf("failed to append round %s: %w", r.ID, err)
	}

	holes := make([][]interface{}, len(r.Holes))
	for i, h := range r.Holes {
		holes[i] = holeRowValues(r.ID, h)
	}
	if err := s.api.AppendRows(ctx, s.spreadsheetID, HolesSheet+"!A:F", holes); err != nil {
		return fmt.Errorf("failed to append holes for round %s: %w", r.ID, err)
	}
	return nil
}

func (s *RoundStore) readAll(ctx context.Context) ([]app.Round, error) {
	var roundRows, holeRows [][]interface{}

	err := retry.Do(ctx, s.retry, "read rounds sheet", func(ctx context.Context) error {
		var err error
		roundRows, err = s.api.ReadSheet(ctx, s.spreadsheetID, roundsRange)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = retry.Do(ctx, s.retry, "read holes sheet", func(ctx context.Context) error {
		var err error
		holeRows, err = s.api.ReadSheet(ctx, s.spreadsheetID, holesRange)
		return err
	})
	if err != nil {
		return nil, err
	}

	return parseRounds(roundRows, holeRows), nil
}

// parseRounds joins round rows with their hole rows. Hole rows keep sheet order.
func parseRounds(roundRows, holeRows [][]interface{}) []app.Round {
	rounds := make([]app.Round, 0, len(roundRows))
	index := make(map[string]int, len(roundRows))

	for i, row := range roundRows {
		r, err := parseRoundRow(row)
		if err != nil {
			log.Warn().
				Err(err).
				Int("row", i+2).
				Msg("Skipping unreadable round row")
			continue
		}
		if _, dup := index[r.ID]; dup {
			log.Warn().
				Str("round_id", r.ID).
				Int("row", i+2).
				Msg("Skipping duplicate round id")
			continue
		}
		index[r.ID] = len(rounds)
		rounds = append(rounds, r)
	}

	for i, row := range holeRows {
		roundID := CellAt(row, 0).String()
		pos, ok := index[roundID]
		if !ok {
			log.Debug().
				Str("round_id", roundID).
				Int("row", i+2).
				Msg("Hole row has no matching round")
			continue
		}
		rounds[pos].Holes = append(rounds[pos].Holes, parseHoleRow(row))
	}

	return rounds
}

func parseRoundRow(row []interface{}) (app.Round, error) {
	id := CellAt(row, 0).String()
	if id == "" {
		return app.Round{}, fmt.Errorf("missing round id")
	}

	date, err := round.ParseDate(CellAt(row, 1).String())
	if err != nil {
		return app.Round{}, fmt.Errorf("round %s: %w", id, err)
	}

	return app.Round{
		ID:        id,
		Date:      date,
		Course:    CellAt(row, 2).String(),
		Tees:      CellAt(row, 3).String(),
		Slope:     CellAt(row, 4).IntPtr(),
		Rating:    CellAt(row, 5).Float64Ptr(),
		Par:       CellAt(row, 6).IntPtr(),
		MatchType: CellAt(row, 7).String(),
		Result:    CellAt(row, 8).String(),
		PlayerHcp: CellAt(row, 9).Float64Ptr(),
		Notes:     CellAt(row, 10).String(),
	}, nil
}

// parseHoleRow reads a hole; a blank fairway cell means the hole had no fairway target
func parseHoleRow(row []interface{}) app.HoleStat {
	return app.HoleStat{
		Hole:       CellAt(row, 1).Int(),
		FairwayHit: CellAt(row, 2).BoolPtr(),
		GreenInReg: CellAt(row, 3).Bool(),
		Putts:      CellAt(row, 4).Int(),
		Score:      CellAt(row, 5).Int(),
	}
}

func roundRow(r app.Round) []interface{} {
	return []interface{}{
		r.ID,
		r.Date.Format("2006-01-02T15:04:05Z07:00"),
		r.Course,
		r.Tees,
		optionalInt(r.Slope),
		optionalFloat(r.Rating),
		optionalInt(r.Par),
		r.MatchType,
		r.Result,
		optionalFloat(r.PlayerHcp),
		r.Notes,
	}
}

func holeRowValues(roundID string, h app.HoleStat) []interface{} {
	fairway := ""
	if h.FairwayHit != nil {
		fairway = "N"
		if *h.FairwayHit {
			fairway = "Y"
		}
	}
	gir := "N"
	if h.GreenInReg {
		gir = "Y"
	}
	return []interface{}{roundID, h.Hole, fairway, gir, h.Putts, h.Score}
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
