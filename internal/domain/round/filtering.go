package round

import (
	"math"
	"strings"
	"time"

	"golf_stats/internal/app"
)

// Filters is a set of optional constraints over round summaries.
// A nil pointer, empty slice or blank query imposes no constraint.
// FIR and GIR bounds are fractions in [0,1]; see PercentToFraction.
type Filters struct {
	Query     string     `json:"query,omitempty"`
	Courses   []string   `json:"courses,omitempty"`
	DateFrom  *time.Time `json:"dateFrom,omitempty"`
	DateTo    *time.Time `json:"dateTo,omitempty"`
	Tees      []string   `json:"tees,omitempty"`
	Holes     *int       `json:"holes,omitempty"`
	MatchType []string   `json:"matchType,omitempty"`
	Result    []string   `json:"result,omitempty"`
	ScoreMin  *int       `json:"scoreMin,omitempty"`
	ScoreMax  *int       `json:"scoreMax,omitempty"`
	NetMin    *int       `json:"netMin,omitempty"`
	NetMax    *int       `json:"netMax,omitempty"`
	FIRMin    *float64   `json:"firMin,omitempty"`
	FIRMax    *float64   `json:"firMax,omitempty"`
	GIRMin    *float64   `json:"girMin,omitempty"`
	GIRMax    *float64   `json:"girMax,omitempty"`
	PuttsMin  *int       `json:"puttsMin,omitempty"`
	PuttsMax  *int       `json:"puttsMax,omitempty"`
	Par       []int      `json:"par,omitempty"`
}

// FilterRounds returns the summaries that satisfy every populated constraint.
//
// Pure function: No I/O, returns new slice without modifying input
func FilterRounds(rounds []app.RoundSummary, f Filters) []app.RoundSummary {
	filtered := make([]app.RoundSummary, 0, len(rounds))
	for _, r := range rounds {
		if MatchesFilters(r, f) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MatchesFilters reports whether a single summary passes every populated constraint
func MatchesFilters(r app.RoundSummary, f Filters) bool {
	if q := strings.TrimSpace(f.Query); q != "" &&
		!strings.Contains(strings.ToLower(r.Course), strings.ToLower(q)) {
		return false
	}
	if len(f.Courses) > 0 && !containsString(f.Courses, r.Course) {
		return false
	}

	if f.DateFrom != nil && r.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && r.Date.After(*f.DateTo) {
		return false
	}

	if f.Holes != nil && r.Holes != *f.Holes {
		return false
	}
	if len(f.Tees) > 0 && (r.Tees == "" || !containsString(f.Tees, r.Tees)) {
		return false
	}
	if len(f.MatchType) > 0 && (r.MatchType == "" || !containsString(f.MatchType, r.MatchType)) {
		return false
	}
	if len(f.Result) > 0 && (r.Result == "" || !containsString(f.Result, r.Result)) {
		return false
	}

	if !inIntRange(r.Score, f.ScoreMin, f.ScoreMax) {
		return false
	}

	// A round without handicap data is treated as net 0 here.
	net := 0
	if r.NetVsHcp != nil {
		net = *r.NetVsHcp
	}
	if !inIntRange(net, f.NetMin, f.NetMax) {
		return false
	}

	if !inFloatRange(r.FIRPct, f.FIRMin, f.FIRMax) {
		return false
	}
	if !inFloatRange(r.GIRPct, f.GIRMin, f.GIRMax) {
		return false
	}
	if !inIntRange(r.Putts, f.PuttsMin, f.PuttsMax) {
		return false
	}

	if len(f.Par) > 0 && (r.Par == nil || !containsInt(f.Par, *r.Par)) {
		return false
	}

	return true
}

// PercentToFraction converts a UI percentage (0..100) into the stored
// fraction, clamping out-of-range input first. NaN becomes 0.
func PercentToFraction(pct float64) float64 {
	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct / 100
}

// ParseDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date (UTC midnight)
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func inIntRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func inFloatRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
