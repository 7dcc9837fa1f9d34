package round

import "strings"

// CountActiveFilters counts populated filter dimensions, not values:
// a non-empty slice counts once however many entries it holds.
func CountActiveFilters(f Filters) int {
	count := 0

	if strings.TrimSpace(f.Query) != "" {
		count++
	}

	for _, n := range []int{len(f.Courses), len(f.Tees), len(f.MatchType), len(f.Result), len(f.Par)} {
		if n > 0 {
			count++
		}
	}

	if f.DateFrom != nil {
		count++
	}
	if f.DateTo != nil {
		count++
	}

	for _, p := range []*int{f.Holes, f.ScoreMin, f.ScoreMax, f.NetMin, f.NetMax, f.PuttsMin, f.PuttsMax} {
		if p != nil {
			count++
		}
	}
	for _, p := range []*float64{f.FIRMin, f.FIRMax, f.GIRMin, f.GIRMax} {
		if p != nil {
			count++
		}
	}

	return count
}
