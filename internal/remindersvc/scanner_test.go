package remindersvc

import (
	"strings"
	"testing"
	"time"

	"github.com/picksleague/picks-services/internal/picksvc/models"
)

func TestInReminderWindow(t *testing.T) {
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, models.Central())

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{name: "20 minutes out is inside", offset: 20 * time.Minute, want: true},
		{name: "10 minutes out is too close", offset: 10 * time.Minute, want: false},
		{name: "31 minutes out is too far", offset: 31 * time.Minute, want: false},
		{name: "exactly 15 minutes is excluded", offset: 15 * time.Minute, want: false},
		{name: "exactly 30 minutes is excluded", offset: 30 * time.Minute, want: false},
		{name: "16 minutes out is inside", offset: 16 * time.Minute, want: true},
		{name: "29 minutes out is inside", offset: 29 * time.Minute, want: true},
		{name: "already started", offset: -5 * time.Minute, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startTime := models.FormatStartTime(now.Add(tt.offset))
			if got := inReminderWindow(startTime, now); got != tt.want {
				t.Errorf("inReminderWindow(%q, now) = %v, want %v", startTime, got, tt.want)
			}
		})
	}
}

func TestInReminderWindowUnparseable(t *testing.T) {
	if inReminderWindow("not a date", time.Now()) {
		t.Error("unparseable start time must never qualify for a reminder")
	}
}

func TestMissingGames(t *testing.T) {
	upcoming := []windowGame{
		{Game: models.Game{ID: 1, HomeTeam: "A", AwayTeam: "B"}, Round: "round1"},
		{Game: models.Game{ID: 10, HomeTeam: "C", AwayTeam: "D"}, Round: "nfl"},
	}

	tests := []struct {
		name  string
		picks models.Picks
		want  []int64 // ids of games expected missing
	}{
		{
			name:  "no picks at all",
			picks: models.Picks{},
			want:  []int64{1, 10},
		},
		{
			name: "standard pick present, confidence absent",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
			},
			want: []int64{10},
		},
		{
			name: "confidence pick with team but no points still counts as missing",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
				"nfl":    {"10": {Team: "C"}},
			},
			want: []int64{10},
		},
		{
			name: "confidence pick with points but no team still counts as missing",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
				"nfl":    {"10": {Points: 4}},
			},
			want: []int64{10},
		},
		{
			name: "everything picked",
			picks: models.Picks{
				"round1": {"1": {Team: "A"}},
				"nfl":    {"10": {Team: "C", Points: 4}},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := missingGames(tt.picks, upcoming)

			var got []int64
			for _, g := range missing {
				got = append(got, g.ID)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("missingGames() ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("missingGames() ids = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestReminderBodyListsEveryGame(t *testing.T) {
	s := &Scanner{appURL: "https://picks.example.com"}
	missing := []windowGame{
		{Game: models.Game{ID: 1, HomeTeam: "Eagles", AwayTeam: "Cowboys", StartTime: "12/15/2024, 6:00:00 PM"}, Round: "round1"},
		{Game: models.Game{ID: 10, HomeTeam: "Patriots", AwayTeam: "Jets", StartTime: "12/15/2024, 8:00:00 PM"}, Round: "nfl"},
	}

	body := s.reminderBody(missing)

	for _, fragment := range []string{
		"You have 2 games starting in about 30 minutes",
		"Eagles vs Cowboys",
		"Patriots vs Jets",
		"Remember to set your confidence points!",
		"https://picks.example.com",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("reminder body missing %q\nbody: %s", fragment, body)
		}
	}
}
