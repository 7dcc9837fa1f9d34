package bag

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golf_stats/internal/app"

	"github.com/google/uuid"
)

// MaxClubs is the rules limit on clubs carried. Exceeding it only warns.
const MaxClubs = 14

var (
	ErrDuplicateClub = errors.New("club is already in the bag")
	ErrClubNotFound  = errors.New("club not found")
	ErrInvalidClub   = errors.New("invalid club")
)

// Preset is a standard club offered by the bag builder
type Preset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Loft  string `json:"loft,omitempty"`
}

// Presets lists the standard clubs per type
var Presets = map[app.ClubType][]Preset{
	app.ClubWood: {
		{ID: "driver", Label: "Driver", Loft: "10.5°"},
		{ID: "3w", Label: "3 Wood", Loft: "15°"},
		{ID: "5w", Label: "5 Wood", Loft: "18°"},
		{ID: "7w", Label: "7 Wood", Loft: "21°"},
	},
	app.ClubHybrid: {
		{ID: "3h", Label: "3 Hybrid", Loft: "19°"},
		{ID: "4h", Label: "4 Hybrid", Loft: "22°"},
		{ID: "5h", Label: "5 Hybrid", Loft: "25°"},
	},
	app.ClubIron: {
		{ID: "5i", Label: "5 Iron"},
		{ID: "6i", Label: "6 Iron"},
		{ID: "7i", Label: "7 Iron"},
		{ID: "8i", Label: "8 Iron"},
		{ID: "9i", Label: "9 Iron"},
	},
	app.ClubWedge: {
		{ID: "pw", Label: "Pitching Wedge", Loft: "46°"},
		{ID: "gw", Label: "Gap Wedge", Loft: "50°"},
		{ID: "sw", Label: "Sand Wedge", Loft: "54°"},
		{ID: "lw", Label: "Lob Wedge", Loft: "58°"},
	},
	app.ClubPutter: {
		{ID: "putter", Label: "Putter"},
	},
}

// NewClub describes a club to add. With PresetID set the label and default
// loft come from the preset; otherwise Label is required and Type defaults to Iron.
type NewClub struct {
	Type     app.ClubType `json:"type"`
	PresetID string       `json:"presetId,omitempty"`
	Label    string       `json:"label,omitempty"`
	Loft     string       `json:"loft,omitempty"`
	Yardage  string       `json:"yardage,omitempty"`
}

// AddClub returns a copy of bag with the new club appended
func AddClub(bag app.Bag, req NewClub) (app.Bag, app.Club, error) {
	club, err := buildClub(req)
	if err != nil {
		return bag, app.Club{}, err
	}

	for _, existing := range bag.Clubs {
		if isDuplicate(existing, club, req.PresetID != "") {
			return bag, app.Club{}, fmt.Errorf("%w: %s", ErrDuplicateClub, club.Label)
		}
	}

	clubs := make([]app.Club, 0, len(bag.Clubs)+1)
	clubs = append(clubs, bag.Clubs...)
	clubs = append(clubs, club)
	bag.Clubs = clubs
	return bag, club, nil
}

// RemoveClub returns a copy of bag without the club with the given id
func RemoveClub(bag app.Bag, id string) (app.Bag, error) {
	clubs := make([]app.Club, 0, len(bag.Clubs))
	found := false
	for _, c := range bag.Clubs {
		if c.ID == id {
			found = true
			continue
		}
		clubs = append(clubs, c)
	}
	if !found {
		return bag, fmt.Errorf("%w: %s", ErrClubNotFound, id)
	}
	bag.Clubs = clubs
	return bag, nil
}

// GroupByType buckets clubs by type, keeping bag order within each bucket.
// Every club type has an entry, possibly empty.
func GroupByType(bag app.Bag) map[app.ClubType][]app.Club {
	groups := make(map[app.ClubType][]app.Club, len(app.ClubTypes))
	for _, t := range app.ClubTypes {
		groups[t] = []app.Club{}
	}
	for _, c := range bag.Clubs {
		groups[c.Type] = append(groups[c.Type], c)
	}
	return groups
}

// OverLimit reports whether the bag carries more than MaxClubs clubs
func OverLimit(bag app.Bag) bool {
	return len(bag.Clubs) > MaxClubs
}

func buildClub(req NewClub) (app.Club, error) {
	if req.PresetID != "" {
		preset, ok := findPreset(req.Type, req.PresetID)
		if !ok {
			return app.Club{}, fmt.Errorf("%w: unknown preset %q for type %q", ErrInvalidClub, req.PresetID, req.Type)
		}
		loft := strings.TrimSpace(req.Loft)
		if loft == "" {
			loft = preset.Loft
		}
		return app.Club{
			ID:      preset.ID + "-" + uuid.NewString(),
			Type:    req.Type,
			Label:   preset.Label,
			Loft:    loft,
			Yardage: strings.TrimSpace(req.Yardage),
		}, nil
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		return app.Club{}, fmt.Errorf("%w: label is required", ErrInvalidClub)
	}
	clubType := req.Type
	if clubType == "" {
		clubType = app.ClubIron
	}
	if !validType(clubType) {
		return app.Club{}, fmt.Errorf("%w: unknown type %q", ErrInvalidClub, clubType)
	}
	return app.Club{
		ID:      slug(label) + "-" + uuid.NewString(),
		Type:    clubType,
		Label:   label,
		Loft:    strings.TrimSpace(req.Loft),
		Yardage: strings.TrimSpace(req.Yardage),
	}, nil
}

// isDuplicate matches presets on type and label; custom clubs on label alone
func isDuplicate(existing, candidate app.Club, preset bool) bool {
	if !strings.EqualFold(existing.Label, candidate.Label) {
		return false
	}
	return !preset || existing.Type == candidate.Type
}

func findPreset(t app.ClubType, id string) (Preset, bool) {
	for _, p := range Presets[t] {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func validType(t app.ClubType) bool {
	for _, known := range app.ClubTypes {
		if t == known {
			return true
		}
	}
	return false
}

func validateClub(c app.Club) error {
	if c.ID == "" || strings.TrimSpace(c.Label) == "" {
		return fmt.Errorf("%w: club needs an id and a label", ErrInvalidClub)
	}
	if !validType(c.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidClub, c.Type)
	}
	return nil
}

var nonWord = regexp.MustCompile(`[^\w]+`)

func slug(s string) string {
	return strings.ToLower(nonWord.ReplaceAllString(s, "-"))
}
