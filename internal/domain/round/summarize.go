package round

import (
	"errors"
	"math"

	"golf_stats/internal/app"
)

// BasePar is the fixed par baseline used for net-vs-handicap.
// It ignores the round's actual par; keep it until product decides otherwise.
const BasePar = 72

// Summarize projects a detailed round into its aggregate summary.
// Returns a *ValidationError for an empty hole sequence, a score below 1,
// negative putts, or hole numbers that are not 1..N in order.
//
// Pure function: No I/O, the input round is not modified.
func Summarize(round app.Round) (app.RoundSummary, error) {
	if err := ValidateRound(round); err != nil {
		return app.RoundSummary{}, err
	}

	var fairwayAttempts, fairwayHits, greens, putts, strokes int
	for _, hole := range round.Holes {
		if hole.FairwayHit != nil {
			fairwayAttempts++
			if *hole.FairwayHit {
				fairwayHits++
			}
		}
		if hole.GreenInReg {
			greens++
		}
		putts += hole.Putts
		strokes += hole.Score
	}

	summary := app.RoundSummary{
		ID:        round.ID,
		Date:      round.Date,
		Course:    round.Course,
		Tees:      round.Tees,
		Par:       copyIntPtr(round.Par),
		MatchType: round.MatchType,
		Result:    round.Result,
		Holes:     len(round.Holes),
		FIRPct:    ratio(fairwayHits, fairwayAttempts),
		GIRPct:    ratio(greens, len(round.Holes)),
		Putts:     putts,
		Score:     strokes,
	}

	if round.PlayerHcp != nil {
		net := NetVsHandicap(strokes, *round.PlayerHcp)
		summary.NetVsHcp = &net
	}

	return summary, nil
}

// ValidateRound checks the hole sequence invariants Summarize relies on
func ValidateRound(round app.Round) error {
	if len(round.Holes) == 0 {
		return newValidationError(round.ID, "holes", "round has no holes")
	}

	for i, hole := range round.Holes {
		if hole.Hole != i+1 {
			return newValidationError(round.ID, "holes", "expected hole %d at position %d, got %d", i+1, i+1, hole.Hole)
		}
		if hole.Score < 1 {
			return newValidationError(round.ID, "score", "hole %d has score %d, must be at least 1", hole.Hole, hole.Score)
		}
		if hole.Putts < 0 {
			return newValidationError(round.ID, "putts", "hole %d has negative putts %d", hole.Hole, hole.Putts)
		}
	}

	return nil
}

// NetVsHandicap returns score - (BasePar + handicap), rounded half-up to whole strokes
func NetVsHandicap(score int, handicap float64) int {
	return roundHalfUp(float64(score) - (BasePar + handicap))
}

// SummarizeAll summarizes every valid round and collects the validation
// errors of the rest. Input order is preserved in the summaries.
func SummarizeAll(rounds []app.Round) ([]app.RoundSummary, []*ValidationError) {
	summaries := make([]app.RoundSummary, 0, len(rounds))
	var invalid []*ValidationError

	for _, r := range rounds {
		summary, err := Summarize(r)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				invalid = append(invalid, verr)
				continue
			}
			invalid = append(invalid, newValidationError(r.ID, "round", "%v", err))
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, invalid
}

// ratio returns part/whole, or 0 when whole is 0
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// roundHalfUp rounds to the nearest integer with .5 going toward +Inf
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
