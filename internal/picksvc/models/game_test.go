package models

import (
	"testing"
	"time"
)

func TestIsLocked(t *testing.T) {
	start := "12/15/2024, 6:00:00 PM"

	tests := []struct {
		name      string
		startTime string
		now       time.Time
		want      bool
	}{
		{
			name:      "well before start",
			startTime: start,
			now:       time.Date(2024, 12, 15, 12, 0, 0, 0, Central()),
			want:      false,
		},
		{
			name:      "one second before start",
			startTime: start,
			now:       time.Date(2024, 12, 15, 17, 59, 59, 0, Central()),
			want:      false,
		},
		{
			name:      "exact start instant",
			startTime: start,
			now:       time.Date(2024, 12, 15, 18, 0, 0, 0, Central()),
			want:      true,
		},
		{
			name:      "after start",
			startTime: start,
			now:       time.Date(2024, 12, 15, 20, 30, 0, 0, Central()),
			want:      true,
		},
		{
			name:      "unparseable start time never locks",
			startTime: "not a date",
			now:       time.Date(2030, 1, 1, 0, 0, 0, 0, Central()),
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLocked(tt.startTime, tt.now); got != tt.want {
				t.Errorf("IsLocked(%q, %v) = %v, want %v", tt.startTime, tt.now, got, tt.want)
			}
		})
	}
}

func TestParseStartTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, 12, 15, 18, 0, 0, 0, Central())

	formatted := FormatStartTime(in)
	parsed, err := ParseStartTime(formatted)
	if err != nil {
		t.Fatalf("ParseStartTime(%q) error = %v", formatted, err)
	}
	if !parsed.Equal(in) {
		t.Errorf("round trip through %q = %v, want %v", formatted, parsed, in)
	}
}

func TestParseStartTimeInvalid(t *testing.T) {
	if _, err := ParseStartTime("tomorrow-ish"); err == nil {
		t.Error("ParseStartTime accepted garbage input")
	}
}

func TestGamePointValue(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{name: "unset defaults to one", points: 0, want: 1},
		{name: "explicit value kept", points: 3, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Game{Points: tt.points}
			if got := g.PointValue(); got != tt.want {
				t.Errorf("PointValue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGameKey(t *testing.T) {
	g := Game{ID: 1734285600000}
	if got := g.Key(); got != "1734285600000" {
		t.Errorf("Key() = %q, want %q", got, "1734285600000")
	}
}
