package round

import (
	"fmt"

	"golf_stats/internal/app"
)

// DefaultTrendWindow is the number of recent rounds compared by default
const DefaultTrendWindow = 3

// Trend metrics
const (
	MetricFIR = "fir"
	MetricGIR = "gir"
)

// CalculateTrendSnapshot compares the most recent summary with the oldest one
// inside the window. Summaries must already be ordered most-recent-first.
// Returns nil when the window holds fewer than two rounds.
//
// Pure function: deterministic output from input.
func CalculateTrendSnapshot(recent []app.RoundSummary, windowSize int) *app.TrendSnapshot {
	if windowSize <= 0 {
		windowSize = DefaultTrendWindow
	}

	window := recent
	if len(window) > windowSize {
		window = window[:windowSize]
	}
	if len(window) < 2 {
		return nil
	}

	latest := window[0]
	oldest := window[len(window)-1]

	firDelta := roundHalfUp(100 * (latest.FIRPct - oldest.FIRPct))
	girDelta := roundHalfUp(100 * (latest.GIRPct - oldest.GIRPct))

	snapshot := &app.TrendSnapshot{
		FIRDelta: firDelta,
		GIRDelta: girDelta,
		Window:   len(window),
		Details: fmt.Sprintf("FIR: %d%% • GIR: %d%% (most recent)",
			roundHalfUp(latest.FIRPct*100), roundHalfUp(latest.GIRPct*100)),
	}

	if abs(firDelta) >= abs(girDelta) {
		snapshot.Metric = MetricFIR
		snapshot.Headline = headline("Driving accuracy", firDelta, len(window))
	} else {
		snapshot.Metric = MetricGIR
		snapshot.Headline = headline("GIR", girDelta, len(window))
	}

	return snapshot
}

func headline(metric string, delta, window int) string {
	arrow := "↑"
	if delta < 0 {
		arrow = "↓"
	}
	return fmt.Sprintf("%s %s %d%% last %d rounds", metric, arrow, abs(delta), window)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
