package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/picksleague/picks-services/internal/picksvc/models"
	"github.com/picksleague/picks-services/internal/picksvc/store"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameLocked   = errors.New("game has started, picks are locked")
	ErrEmptyPick    = errors.New("pick needs a team or confidence points")
	ErrPointsRange  = errors.New("confidence points must be between 1 and 13")
	ErrPointsTaken  = errors.New("confidence points already used on another game")
)

// PickService handles pick submission. The lock and the confidence-point
// rules are enforced here on every write, regardless of what the client
// allowed.
type PickService struct {
	userStore *store.UserStore
	gameStore *store.GameStore

	broadcaster Broadcaster
}

func NewPickService(userStore *store.UserStore, gameStore *store.GameStore) *PickService {
	return &PickService{
		userStore: userStore,
		gameStore: gameStore,
	}
}

// SetBroadcaster sets the change-notification sink.
func (s *PickService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitPick records one pick for the authenticated user. Confidence-round
// submissions may carry only the team or only the points; the store merges
// the new field into any existing pick for the game.
func (s *PickService) SubmitPick(ctx context.Context, userID, round, gameID string, pick models.Pick) error {
	if !models.ValidRound(round) {
		return ErrUnknownRound
	}

	games, err := s.gameStore.GetRound(ctx, round)
	if err != nil {
		return err
	}

	var game *models.Game
	for i := range games {
		if games[i].Key() == gameID {
			game = &games[i]
			break
		}
	}
	if game == nil {
		return ErrGameNotFound
	}

	if models.IsLocked(game.StartTime, time.Now()) {
		return ErrGameLocked
	}

	if pick.Team != "" && pick.Team != game.HomeTeam && pick.Team != game.AwayTeam {
		return fmt.Errorf("pick must be %s or %s", game.HomeTeam, game.AwayTeam)
	}

	if round == models.ConfidenceRound {
		if pick.Team == "" && pick.Points == 0 {
			return ErrEmptyPick
		}
		if pick.Points != 0 {
			user, err := s.userStore.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %s not found", userID)
			}
			if err := validateConfidencePoints(user.Picks, gameID, pick.Points); err != nil {
				return err
			}
		}
	} else {
		if pick.Team == "" {
			return ErrEmptyPick
		}
		pick.Points = 0
	}

	if err := s.userStore.SetPick(ctx, userID, round, gameID, pick); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.UsersChanged()
	}

	return nil
}

// validateConfidencePoints enforces the confidence invariant: points are in
// [1,13] and each value is staked on at most one game. Re-submitting the
// same value for the same game is allowed.
func validateConfidencePoints(picks models.Picks, gameID string, points int) error {
	if points < 1 || points > 13 {
		return ErrPointsRange
	}

	for otherID, other := range picks[models.ConfidenceRound] {
		if otherID != gameID && other.Points == points {
			return ErrPointsTaken
		}
	}

	return nil
}
