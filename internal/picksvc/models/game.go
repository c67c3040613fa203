package models

import (
	"strconv"
	"time"
)

// Round identifiers. The first four are standard playoff rounds scored by the
// game's point value; the nfl round is scored by per-user confidence points.
const (
	RoundOne        = "round1"
	RoundTwo        = "round2"
	RoundThree      = "round3"
	RoundFour       = "round4"
	ConfidenceRound = "nfl"
)

// Rounds lists every round in play, in display order.
var Rounds = []string{RoundOne, RoundTwo, RoundThree, RoundFour, ConfidenceRound}

// ValidRound reports whether round names one of the configured rounds.
func ValidRound(round string) bool {
	for _, r := range Rounds {
		if r == round {
			return true
		}
	}
	return false
}

// StartTimeLayout is the wall-clock format game start times are stored in.
// It matches en-US locale strings like "12/15/2024, 6:00:00 PM", always
// expressed in Central time.
const StartTimeLayout = "1/2/2006, 3:04:05 PM"

var central = loadCentral()

func loadCentral() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		// zoneinfo missing on the host; CST is close enough to keep running
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// Central returns the league's fixed time zone.
func Central() *time.Location {
	return central
}

// FormatStartTime renders t as a stored start time string in Central time.
func FormatStartTime(t time.Time) string {
	return t.In(central).Format(StartTimeLayout)
}

// ParseStartTime parses a stored start time string as Central wall-clock time.
func ParseStartTime(s string) (time.Time, error) {
	return time.ParseInLocation(StartTimeLayout, s, central)
}

// Game is a single matchup within a round. Games are appended to a round's
// list and never removed; Winner is the only field mutated after creation.
type Game struct {
	ID            int64   `json:"id" bson:"id"`
	HomeTeam      string  `json:"homeTeam" bson:"homeTeam"`
	AwayTeam      string  `json:"awayTeam" bson:"awayTeam"`
	HomeTeamColor string  `json:"homeTeamColor,omitempty" bson:"homeTeamColor,omitempty"`
	AwayTeamColor string  `json:"awayTeamColor,omitempty" bson:"awayTeamColor,omitempty"`
	Spread        float64 `json:"spread,omitempty" bson:"spread,omitempty"`
	Points        int     `json:"points,omitempty" bson:"points,omitempty"`
	StartTime     string  `json:"startTime" bson:"startTime"`
	Status        string  `json:"status,omitempty" bson:"status,omitempty"`
	Winner        string  `json:"winner,omitempty" bson:"winner,omitempty"`
}

// Key returns the game id in the string form used as a picks map key.
func (g *Game) Key() string {
	return strconv.FormatInt(g.ID, 10)
}

// PointValue returns the points a correct standard-round pick is worth.
// Games created before points were required default to 1.
func (g *Game) PointValue() int {
	if g.Points <= 0 {
		return 1
	}
	return g.Points
}

// Decided reports whether a winner has been recorded.
func (g *Game) Decided() bool {
	return g.Winner != ""
}

// IsLocked reports whether picks for a game starting at startTime are frozen
// at the moment now. A game locks at its exact start instant. A start time
// that does not parse never locks; that is deliberate, a malformed time must
// not freeze anyone out of their pick.
func IsLocked(startTime string, now time.Time) bool {
	start, err := ParseStartTime(startTime)
	if err != nil {
		return false
	}
	return !now.In(central).Before(start)
}
