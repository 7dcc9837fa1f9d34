package practice

import "golf_stats/internal/app"

var gateDrill = app.Drill{
	ID:     "d1",
	Title:  "Gate Drill – Start Line Control",
	Goal:   "Reduce push/pull putts; improve face control",
	Teaser: "Set two tees a putter-head apart 3 ft in front. Roll 10 balls through the gate; track makes.",
	PremiumDetails: "Progress to 6–8 ft, add tempo metronome, and record dispersion. " +
		"Target ≥ 80% gate success before distance up.",
}

// SuggestedDrill returns the current drill suggestion.
// Free users get the teaser only; PremiumDetails is cleared.
//
// Pure function: No I/O
func SuggestedDrill(premium bool) app.Drill {
	drill := gateDrill
	if !premium {
		drill.PremiumDetails = ""
	}
	return drill
}
