package round

import (
	"sort"

	"golf_stats/internal/app"
)

// FilterOptions lists the values a filter UI can offer
type FilterOptions struct {
	Courses    []string `json:"courses"`
	Tees       []string `json:"tees"`
	Pars       []int    `json:"pars"`
	MatchTypes []string `json:"matchTypes"`
	Results    []string `json:"results"`
}

// BuildFilterOptions collects the distinct courses and pars present in the data.
// Tees are the fixed options followed by any others seen in the data.
func BuildFilterOptions(rounds []app.RoundSummary) FilterOptions {
	courses := make(map[string]bool)
	pars := make(map[int]bool)
	extraTees := make(map[string]bool)

	for _, r := range rounds {
		if r.Course != "" {
			courses[r.Course] = true
		}
		if r.Par != nil {
			pars[*r.Par] = true
		}
		if r.Tees != "" && !containsString(app.TeeOptions, r.Tees) {
			extraTees[r.Tees] = true
		}
	}

	options := FilterOptions{
		Courses:    sortedKeys(courses),
		Tees:       append(append([]string{}, app.TeeOptions...), sortedKeys(extraTees)...),
		Pars:       make([]int, 0, len(pars)),
		MatchTypes: append([]string{}, app.MatchTypes...),
		Results:    append([]string{}, app.Results...),
	}
	for par := range pars {
		options.Pars = append(options.Pars, par)
	}
	sort.Ints(options.Pars)

	return options
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
