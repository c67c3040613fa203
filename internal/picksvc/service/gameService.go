package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/picksleague/picks-services/internal/picksvc/models"
	"github.com/picksleague/picks-services/internal/picksvc/store"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownRound = errors.New("unknown round")

// GameService manages the per-round game registry.
type GameService struct {
	gameStore   *store.GameStore
	broadcaster Broadcaster
}

func NewGameService(gameStore *store.GameStore) *GameService {
	return &GameService{
		gameStore: gameStore,
	}
}

// SetBroadcaster sets the change-notification sink.
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// NewGameInput is the admin payload for creating a game.
type NewGameInput struct {
	HomeTeam      string  `json:"homeTeam"`
	AwayTeam      string  `json:"awayTeam"`
	HomeTeamColor string  `json:"homeTeamColor"`
	AwayTeamColor string  `json:"awayTeamColor"`
	Spread        float64 `json:"spread"`
	Points        int     `json:"points"`
	StartTime     string  `json:"startTime"`
}

// startTimeInputLayouts are the accepted admin input formats, tried in
// order: the HTML datetime-local value, the same with seconds, and the
// stored layout itself. All are read as Central wall-clock time.
var startTimeInputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	models.StartTimeLayout,
}

func parseStartTimeInput(s string) (time.Time, error) {
	for _, layout := range startTimeInputLayouts {
		if t, err := time.ParseInLocation(layout, s, models.Central()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}

// AddGame appends a new game to a round. The id is derived from the
// creation instant; standard-round games default to one point.
func (s *GameService) AddGame(ctx context.Context, round string, in NewGameInput) (*models.Game, error) {
	if !models.ValidRound(round) {
		return nil, ErrUnknownRound
	}
	if in.HomeTeam == "" || in.AwayTeam == "" {
		return nil, errors.New("both teams are required")
	}

	start, err := parseStartTimeInput(in.StartTime)
	if err != nil {
		return nil, err
	}

	game := models.Game{
		ID:            time.Now().UnixMilli(),
		HomeTeam:      in.HomeTeam,
		AwayTeam:      in.AwayTeam,
		HomeTeamColor: in.HomeTeamColor,
		AwayTeamColor: in.AwayTeamColor,
		StartTime:     models.FormatStartTime(start),
		Status:        "upcoming",
	}

	// spread and points only apply to standard rounds; confidence values
	// come from each user's pick
	if round != models.ConfidenceRound {
		game.Spread = in.Spread
		game.Points = in.Points
		if game.Points <= 0 {
			game.Points = 1
		}
	}

	if err := s.gameStore.AddGame(ctx, round, game); err != nil {
		return nil, err
	}

	s.notifyRound(ctx, round)

	return &game, nil
}

// SetWinner records a game's winner. The winner must be one of the two
// teams in the matchup.
func (s *GameService) SetWinner(ctx context.Context, round string, gameID int64, winner string) error {
	if !models.ValidRound(round) {
		return ErrUnknownRound
	}

	games, err := s.gameStore.GetRound(ctx, round)
	if err != nil {
		return err
	}

	var game *models.Game
	for i := range games {
		if games[i].ID == gameID {
			game = &games[i]
			break
		}
	}
	if game == nil {
		return fmt.Errorf("game %d not found in round %s", gameID, round)
	}

	if winner != game.HomeTeam && winner != game.AwayTeam {
		return fmt.Errorf("winner must be %s or %s", game.HomeTeam, game.AwayTeam)
	}

	if err := s.gameStore.SetWinner(ctx, round, gameID, winner); err != nil {
		return err
	}

	s.notifyRound(ctx, round)

	return nil
}

// GetRound returns one round's games.
func (s *GameService) GetRound(ctx context.Context, round string) ([]models.Game, error) {
	if !models.ValidRound(round) {
		return nil, ErrUnknownRound
	}
	return s.gameStore.GetRound(ctx, round)
}

// GetRegistry returns every round's games.
func (s *GameService) GetRegistry(ctx context.Context) (map[string][]models.Game, error) {
	return s.gameStore.GetRegistry(ctx)
}

func (s *GameService) notifyRound(ctx context.Context, round string) {
	if s.broadcaster == nil {
		return
	}

	games, err := s.gameStore.GetRound(ctx, round)
	if err != nil {
		log.Errorf("Error reloading round %s for notification: %s", round, err)
		return
	}
	s.broadcaster.GamesChanged(round, games)
}
