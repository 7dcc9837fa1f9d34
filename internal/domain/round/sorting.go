package round

import (
	"fmt"
	"sort"
	"strings"

	"golf_stats/internal/app"
)

// SortKey selects the field rounds are ordered by
type SortKey string

// SortDir selects ascending or descending order
type SortDir string

const (
	SortByDate  SortKey = "date"
	SortByScore SortKey = "score"

	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// SortSpec describes how to order a list of rounds
type SortSpec struct {
	Key SortKey `json:"key"`
	Dir SortDir `json:"dir"`
}

// DefaultSort is most-recent-first
var DefaultSort = SortSpec{Key: SortByDate, Dir: SortDesc}

// SortRounds returns a new slice ordered by spec. Equal keys keep their input order.
// An unknown key returns the rounds in input order.
//
// Pure function: Does not modify input slice, returns new sorted slice
func SortRounds(rounds []app.RoundSummary, spec SortSpec) []app.RoundSummary {
	sorted := make([]app.RoundSummary, len(rounds))
	copy(sorted, rounds)

	var less func(a, b app.RoundSummary) bool
	switch spec.Key {
	case SortByDate:
		less = func(a, b app.RoundSummary) bool { return a.Date.Before(b.Date) }
	case SortByScore:
		less = func(a, b app.RoundSummary) bool { return a.Score < b.Score }
	default:
		return sorted
	}

	if spec.Dir == SortDesc {
		ascending := less
		less = func(a, b app.RoundSummary) bool { return ascending(b, a) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// RecentFirst returns up to limit summaries ordered most-recent-first.
// A limit <= 0 returns all of them.
func RecentFirst(rounds []app.RoundSummary, limit int) []app.RoundSummary {
	sorted := SortRounds(rounds, DefaultSort)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ParseSortSpec parses "key:dir" (e.g. "score:asc"). An empty string yields DefaultSort
// and a missing direction defaults to descending.
func ParseSortSpec(value string) (SortSpec, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return DefaultSort, nil
	}

	keyPart, dirPart, _ := strings.Cut(value, ":")
	spec := SortSpec{Key: SortKey(keyPart), Dir: SortDesc}

	switch spec.Key {
	case SortByDate, SortByScore:
	default:
		return SortSpec{}, fmt.Errorf("unknown sort key %q", keyPart)
	}

	switch SortDir(dirPart) {
	case "":
	case SortAsc, SortDesc:
		spec.Dir = SortDir(dirPart)
	default:
		return SortSpec{}, fmt.Errorf("unknown sort direction %q", dirPart)
	}

	return spec, nil
}
