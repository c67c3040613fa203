package service

import (
	"errors"
	"testing"

	"github.com/picksleague/picks-services/internal/picksvc/models"
)

func TestValidateConfidencePoints(t *testing.T) {
	picks := models.Picks{
		models.ConfidenceRound: {
			"10": {Team: "A", Points: 10},
			"11": {Team: "C", Points: 5},
		},
	}

	tests := []struct {
		name    string
		gameID  string
		points  int
		wantErr error
	}{
		{name: "unused value accepted", gameID: "12", points: 7},
		{name: "re-submitting the same game keeps its value", gameID: "10", points: 10},
		{name: "value staked on another game rejected", gameID: "12", points: 5, wantErr: ErrPointsTaken},
		{name: "below range", gameID: "12", points: 0, wantErr: ErrPointsRange},
		{name: "above range", gameID: "12", points: 14, wantErr: ErrPointsRange},
		{name: "boundary one accepted", gameID: "12", points: 1},
		{name: "boundary thirteen accepted", gameID: "12", points: 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfidencePoints(picks, tt.gameID, tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateConfidencePoints(%s, %d) error = %v, want %v", tt.gameID, tt.points, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfidencePointsNoExistingPicks(t *testing.T) {
	if err := validateConfidencePoints(models.Picks{}, "10", 13); err != nil {
		t.Errorf("validateConfidencePoints on empty picks error = %v", err)
	}
}
