package scoring

import (
	"reflect"
	"testing"

	"github.com/picksleague/picks-services/internal/picksvc/models"
)

func registryFixture() map[string][]models.Game {
	return map[string][]models.Game{
		"round1": {
			{ID: 1, HomeTeam: "A", AwayTeam: "B", Points: 3, Winner: "A"},
			{ID: 2, HomeTeam: "C", AwayTeam: "D", Winner: "D"}, // points unset, worth 1
			{ID: 3, HomeTeam: "E", AwayTeam: "F"},              // undecided
		},
		"nfl": {
			{ID: 10, HomeTeam: "A", AwayTeam: "B", Winner: "A"},
			{ID: 11, HomeTeam: "C", AwayTeam: "D"}, // undecided
		},
	}
}

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name     string
		picks    models.Picks
		category Category
		want     int
	}{
		{
			name:     "no picks",
			picks:    models.Picks{},
			category: CategoryTotal,
			want:     0,
		},
		{
			name: "no winners recorded",
			picks: models.Picks{
				"round1": {"3": {Team: "E"}},
				"nfl":    {"11": {Team: "C", Points: 5}},
			},
			category: CategoryTotal,
			want:     0,
		},
		{
			name: "correct standard pick earns the game points",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
			},
			category: CategoryTotal,
			want:     3,
		},
		{
			name: "wrong pick earns nothing",
			picks: models.Picks{
				"round1": {"1": {Team: "B"}},
			},
			category: CategoryTotal,
			want:     0,
		},
		{
			name: "unset game points default to one",
			picks: models.Picks{
				"round1": {"2": {Team: "D"}},
			},
			category: CategoryTotal,
			want:     1,
		},
		{
			name: "pick for a game missing from the registry is skipped",
			picks: models.Picks{
				"round1": {"999": {Team: "A"}},
			},
			category: CategoryTotal,
			want:     0,
		},
		{
			name: "confidence pick earns the staked points",
			picks: models.Picks{
				"nfl": {
					"10": {Team: "A", Points: 10},
					"11": {Team: "B", Points: 5}, // undecided game
				},
			},
			category: CategoryConfidence,
			want:     10,
		},
		{
			name: "correct confidence pick without points earns zero",
			picks: models.Picks{
				"nfl": {"10": {Team: "A"}},
			},
			category: CategoryConfidence,
			want:     0,
		},
		{
			name: "standard category excludes the confidence round",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
				"nfl":    {"10": {Team: "A", Points: 10}},
			},
			category: CategoryStandard,
			want:     3,
		},
		{
			name: "confidence category excludes standard rounds",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
				"nfl":    {"10": {Team: "A", Points: 10}},
			},
			category: CategoryConfidence,
			want:     10,
		},
		{
			name: "total sums every round",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}, "2": {Team: "D"}},
				"nfl":    {"10": {Team: "A", Points: 10}},
			},
			category: CategoryTotal,
			want:     14,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.picks, registryFixture(), tt.category)
			if got != tt.want {
				t.Errorf("ComputePoints() = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("ComputePoints() = %d, must never be negative", got)
			}
		})
	}
}

func TestComputePointsIdempotent(t *testing.T) {
	picks := models.Picks{
		"round1": {"1": {Team: "A"}},
		"nfl":    {"10": {Team: "A", Points: 10}},
	}
	registry := registryFixture()

	first := ComputePoints(picks, registry, CategoryTotal)
	second := ComputePoints(picks, registry, CategoryTotal)
	if first != second {
		t.Errorf("repeated calls differ: %d then %d", first, second)
	}

	if !reflect.DeepEqual(registry, registryFixture()) {
		t.Error("ComputePoints mutated the registry")
	}
	if want := (models.Picks{
		"round1": {"1": {Team: "A"}},
		"nfl":    {"10": {Team: "A", Points: 10}},
	}); !reflect.DeepEqual(picks, want) {
		t.Error("ComputePoints mutated the picks")
	}
}

func TestBuildLeaderboard(t *testing.T) {
	users := []*models.User{
		{Username: "alice", Picks: models.Picks{"round1": {"1": {Team: "B"}}}},                          // 0
		{Username: "bob", DisplayName: "Big Bob", Picks: models.Picks{"round1": {"1": {Team: "A"}}}},    // 3
		{Username: "carol", Picks: models.Picks{"round1": {"1": {Team: "A"}, "2": {Team: "C"}}}},        // 3, ties bob
		{Username: "dave", Picks: models.Picks{"round1": {"1": {Team: "A"}, "2": {Team: "D"}}}},         // 4
		{Username: "erin", Picks: models.Picks{"nfl": {"10": {Team: "A", Points: 13}}}},                 // 0 standard
	}

	got := BuildLeaderboard(users, registryFixture(), CategoryStandard)
	want := []Entry{
		{Name: "dave", Points: 4},
		{Name: "Big Bob", Points: 3},
		{Name: "carol", Points: 3},
		{Name: "alice", Points: 0},
		{Name: "erin", Points: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLeaderboard() = %v, want %v", got, want)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{in: "", want: CategoryTotal},
		{in: "total", want: CategoryTotal},
		{in: "standard", want: CategoryStandard},
		{in: "nfl", want: CategoryConfidence},
		{in: "confidence", want: CategoryConfidence},
		{in: "garbage", want: CategoryTotal},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
