package round

import (
	"time"

	"golf_stats/internal/app"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func mustDate(value string) time.Time {
	t, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

// uniformHoles builds n holes numbered 1..n with the given per-hole values
func uniformHoles(n int, fairway *bool, gir bool, putts, score int) []app.HoleStat {
	holes := make([]app.HoleStat, n)
	for i := range holes {
		holes[i] = app.HoleStat{
			Hole:       i + 1,
			FairwayHit: fairway,
			GreenInReg: gir,
			Putts:      putts,
			Score:      score,
		}
	}
	return holes
}

func summaryAt(id, date string, score int) app.RoundSummary {
	return app.RoundSummary{ID: id, Date: mustDate(date), Course: "Packanack GC", Holes: 18, Score: score}
}

func ids(rounds []app.RoundSummary) []string {
	out := make([]string, len(rounds))
	for i, r := range rounds {
		out[i] = r.ID
	}
	return out
}
