package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golf_stats/internal/application/services"
	"golf_stats/internal/domain/round"

	"github.com/go-chi/chi/v5"
)

const maxRoundsLimit = 500

// ListRounds returns filtered and sorted round summaries
// Query params: limit, q, course, tees, match_type, result, par, holes,
// date_from, date_to, score_min/max, net_min/max, fir_min/max, gir_min/max,
// putts_min/max, sort. Course names may contain commas, so courses are only
// taken from repeated course params.
func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	query, err := parseRoundQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	list, err := h.stats.ListSummaries(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list rounds", err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// GetRound returns a single round with its summary
func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rd, summary, err := h.stats.GetRound(r.Context(), id)
	var verr *round.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusUnprocessableEntity, verr.Error(), nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to get round", err)
		return
	case rd == nil:
		respondError(w, http.StatusNotFound, fmt.Sprintf("round %s not found", id), nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"round":   rd,
		"summary": summary,
	})
}

// GetTrend returns the trend snapshot, or null when there is not enough data
// Query params: window
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	window, err := optionalInt(r.URL.Query(), "window")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	size := 0
	if window != nil {
		if *window < 2 {
			respondError(w, http.StatusBadRequest, "window must be at least 2", nil)
			return
		}
		size = *window
	}

	trend, err := h.stats.Trend(r.Context(), size)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute trend", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"trend": trend})
}

// GetLastRound returns the most recent round summary, or null
func (h *Handler) GetLastRound(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.LastRound(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get last round", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"summary": summary})
}

// GetFilterOptions returns the values a filter screen can offer
func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.stats.FilterOptions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build filter options", err)
		return
	}

	respondJSON(w, http.StatusOK, options)
}

// parseRoundQuery maps query parameters onto a RoundQuery.
// FIR and GIR bounds are given as percentages in 0-100.
func parseRoundQuery(values url.Values) (services.RoundQuery, error) {
	var q services.RoundQuery
	var err error

	if q.Limit, err = parseLimit(values); err != nil {
		return q, err
	}
	if q.Sort, err = round.ParseSortSpec(values.Get("sort")); err != nil {
		return q, err
	}

	f := &q.Filters
	f.Query = values.Get("q")
	f.Courses = repeatedValue(values, "course")
	f.Tees = multiValue(values, "tees")
	f.MatchType = multiValue(values, "match_type")
	f.Result = multiValue(values, "result")

	for _, raw := range multiValue(values, "par") {
		par, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("invalid par %q", raw)
		}
		f.Par = append(f.Par, par)
	}

	ints := []struct {
		name   string
		target **int
	}{
		{"holes", &f.Holes},
		{"score_min", &f.ScoreMin},
		{"score_max", &f.ScoreMax},
		{"net_min", &f.NetMin},
		{"net_max", &f.NetMax},
		{"putts_min", &f.PuttsMin},
		{"putts_max", &f.PuttsMax},
	}
	for _, p := range ints {
		if *p.target, err = optionalInt(values, p.name); err != nil {
			return q, err
		}
	}

	percents := []struct {
		name   string
		target **float64
	}{
		{"fir_min", &f.FIRMin},
		{"fir_max", &f.FIRMax},
		{"gir_min", &f.GIRMin},
		{"gir_max", &f.GIRMax},
	}
	for _, p := range percents {
		if *p.target, err = optionalPercent(values, p.name); err != nil {
			return q, err
		}
	}

	if raw := values.Get("date_from"); raw != "" {
		d, err := round.ParseDate(raw)
		if err != nil {
			return q, fmt.Errorf("invalid date_from %q", raw)
		}
		f.DateFrom = &d
	}
	if raw := values.Get("date_to"); raw != "" {
		d, err := round.ParseDate(raw)
		if err != nil {
			return q, fmt.Errorf("invalid date_to %q", raw)
		}
		f.DateTo = &d
	}

	return q, nil
}

func parseLimit(values url.Values) (int, error) {
	limit, err := optionalInt(values, "limit")
	if err != nil || limit == nil {
		return 0, err
	}
	if *limit < 0 {
		return 0, fmt.Errorf("limit must not be negative")
	}
	if *limit > maxRoundsLimit {
		return maxRoundsLimit, nil
	}
	return *limit, nil
}

// multiValue collects repeated and comma-separated values, dropping blanks
func multiValue(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// repeatedValue collects repeated values as given, dropping blanks
func repeatedValue(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return &v, nil
}

func optionalPercent(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(pct) {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	fraction := round.PercentToFraction(pct)
	return &fraction, nil
}
