package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPickUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Pick
		wantErr bool
	}{
		{
			name: "bare team name",
			data: `"Eagles"`,
			want: Pick{Team: "Eagles"},
		},
		{
			name: "confidence object",
			data: `{"team":"Eagles","points":10}`,
			want: Pick{Team: "Eagles", Points: 10},
		},
		{
			name: "team only object",
			data: `{"team":"Eagles"}`,
			want: Pick{Team: "Eagles"},
		},
		{
			name:    "unsupported shape",
			data:    `[1,2]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Pick
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestPickMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		pick Pick
		want string
	}{
		{
			name: "standard pick stays a bare string",
			pick: Pick{Team: "Eagles"},
			want: `"Eagles"`,
		},
		{
			name: "confidence pick keeps its points",
			pick: Pick{Team: "Eagles", Points: 10},
			want: `{"team":"Eagles","points":10}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.pick)
			if err != nil {
				t.Fatalf("Marshal(%+v) error = %v", tt.pick, err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal(%+v) = %s, want %s", tt.pick, got, tt.want)
			}
		})
	}
}

func TestPickBSONBothForms(t *testing.T) {
	type doc struct {
		Pick Pick `bson:"pick"`
	}

	// bare string form, the layout standard-round picks are stored in
	raw, err := bson.Marshal(bson.M{"pick": "Cowboys"})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var fromString doc
	if err := bson.Unmarshal(raw, &fromString); err != nil {
		t.Fatalf("Unmarshal string form error = %v", err)
	}
	if want := (Pick{Team: "Cowboys"}); fromString.Pick != want {
		t.Errorf("string form = %+v, want %+v", fromString.Pick, want)
	}

	// sub-document form used by the confidence round
	raw, err = bson.Marshal(doc{Pick: Pick{Team: "Cowboys", Points: 7}})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var fromDoc doc
	if err := bson.Unmarshal(raw, &fromDoc); err != nil {
		t.Fatalf("Unmarshal document form error = %v", err)
	}
	if want := (Pick{Team: "Cowboys", Points: 7}); fromDoc.Pick != want {
		t.Errorf("document form = %+v, want %+v", fromDoc.Pick, want)
	}
}

func TestPicksGet(t *testing.T) {
	picks := Picks{
		"round1": {"1": {Team: "Eagles"}},
	}

	if pick, ok := picks.Get("round1", "1"); !ok || pick.Team != "Eagles" {
		t.Errorf("Get(round1, 1) = %+v, %v; want Eagles, true", pick, ok)
	}
	if _, ok := picks.Get("round1", "2"); ok {
		t.Error("Get(round1, 2) reported a pick that does not exist")
	}
	if _, ok := picks.Get("nfl", "1"); ok {
		t.Error("Get(nfl, 1) reported a pick that does not exist")
	}
}

func TestUserLeaderboardName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "display name preferred",
			user: User{Username: "jdoe", DisplayName: "Big John"},
			want: "Big John",
		},
		{
			name: "falls back to username",
			user: User{Username: "jdoe"},
			want: "jdoe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.LeaderboardName(); got != tt.want {
				t.Errorf("LeaderboardName() = %q, want %q", got, tt.want)
			}
		})
	}
}
