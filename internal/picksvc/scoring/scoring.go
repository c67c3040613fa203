package scoring

import (
	"sort"

	"github.com/picksleague/picks-services/internal/picksvc/models"
)

// Category selects which rounds a score is summed over.
type Category int

const (
	CategoryTotal Category = iota // every round
	CategoryStandard              // playoff rounds only
	CategoryConfidence            // the nfl confidence round only
)

// ParseCategory maps the query-string form to a Category. Unknown values
// fall back to the total.
func ParseCategory(s string) Category {
	switch s {
	case "standard":
		return CategoryStandard
	case "nfl", "confidence":
		return CategoryConfidence
	default:
		return CategoryTotal
	}
}

func (c Category) includes(round string) bool {
	switch c {
	case CategoryStandard:
		return round != models.ConfidenceRound
	case CategoryConfidence:
		return round == models.ConfidenceRound
	}
	return true
}

// ComputePoints totals the points a user has earned for their picks against
// the registry of games per round. Only games with a recorded winner score.
// A correct standard-round pick is worth the game's point value; a correct
// confidence pick is worth the points the user staked on it, zero if they
// never chose a value. Picks for games missing from the registry snapshot
// are skipped. The result is never negative and the inputs are not mutated.
func ComputePoints(picks models.Picks, registry map[string][]models.Game, category Category) int {
	total := 0

	for round, gamePicks := range picks {
		if !category.includes(round) {
			continue
		}

		games := registry[round]
		for gameID, pick := range gamePicks {
			game := findGame(games, gameID)
			if game == nil || !game.Decided() {
				continue
			}
			if pick.Team != game.Winner {
				continue
			}

			if round == models.ConfidenceRound {
				if pick.Points > 0 {
					total += pick.Points
				}
				continue
			}
			total += game.PointValue()
		}
	}

	return total
}

func findGame(games []models.Game, gameID string) *models.Game {
	for i := range games {
		if games[i].Key() == gameID {
			return &games[i]
		}
	}
	return nil
}

// Entry is one leaderboard row.
type Entry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// BuildLeaderboard scores every user and orders them by points, highest
// first. The sort is stable so users with equal points keep the order they
// were enumerated in.
func BuildLeaderboard(users []*models.User, registry map[string][]models.Game, category Category) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{
			Name:   u.LeaderboardName(),
			Points: ComputePoints(u.Picks, registry, category),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	return entries
}
