package app

import "time"

// HoleStat represents one played hole
type HoleStat struct {
	Hole       int   `json:"hole"`
	FairwayHit *bool `json:"fairwayHit"` // nil for holes without a fairway target (par 3s)
	GreenInReg bool  `json:"greenInReg"`
	Putts      int   `json:"putts"`
	Score      int   `json:"score"`
}

// Round represents a completed round with hole-by-hole detail
type Round struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Course    string     `json:"course"`
	Tees      string     `json:"tees,omitempty"`
	Slope     *int       `json:"slope,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	Par       *int       `json:"par,omitempty"`
	MatchType string     `json:"matchType,omitempty"`
	Result    string     `json:"result,omitempty"`
	Holes     []HoleStat `json:"holes"`
	PlayerHcp *float64   `json:"playerHcp,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// RoundSummary is the aggregate projection of a Round
type RoundSummary struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Course    string    `json:"course"`
	Tees      string    `json:"tees,omitempty"`
	Par       *int      `json:"par,omitempty"`
	MatchType string    `json:"matchType,omitempty"`
	Result    string    `json:"result,omitempty"`
	Holes     int       `json:"holes"`
	FIRPct    float64   `json:"firPct"` // 0..1
	GIRPct    float64   `json:"girPct"` // 0..1
	Putts     int       `json:"putts"`
	Score     int       `json:"score"`
	NetVsHcp  *int      `json:"netVsHcp,omitempty"` // negative is better
}

// TrendSnapshot is a one-line headline comparing recent rounds
type TrendSnapshot struct {
	Headline string `json:"headline"`
	Details  string `json:"details,omitempty"`
	Metric   string `json:"metric"`
	FIRDelta int    `json:"firDelta"` // percentage points
	GIRDelta int    `json:"girDelta"` // percentage points
	Window   int    `json:"window"`
}

// Match types and results offered by the round filter
var (
	MatchTypes = []string{"Stroke", "Match", "Skins", "Practice"}
	Results    = []string{"Win", "Loss", "Tie", "N/A"}
	TeeOptions = []string{"Red", "White", "Blue", "Gold", "Black", "Green"}
)

// ClubType is the category a club is grouped under in the bag
type ClubType string

const (
	ClubWood   ClubType = "Wood"
	ClubHybrid ClubType = "Hybrid"
	ClubIron   ClubType = "Iron"
	ClubWedge  ClubType = "Wedge"
	ClubPutter ClubType = "Putter"
)

// ClubTypes lists the club categories in bag display order
var ClubTypes = []ClubType{ClubWood, ClubHybrid, ClubIron, ClubWedge, ClubPutter}

// Club is one club in the player's bag
type Club struct {
	ID      string   `json:"id"`
	Type    ClubType `json:"type"`
	Label   string   `json:"label"`
	Loft    string   `json:"loft,omitempty"`
	Yardage string   `json:"yardage,omitempty"`
}

// Bag is the persisted equipment bag
type Bag struct {
	UpdatedAt int64  `json:"updatedAt"` // unix millis
	Clubs     []Club `json:"clubs"`
}

// Drill is a practice suggestion
type Drill struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Goal           string `json:"goal"`
	Teaser         string `json:"teaser"`
	PremiumDetails string `json:"premiumDetails,omitempty"`
}
