package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/picksleague/picks-services/internal/picksvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gamesCollection = "games"

// roundDoc is the persisted shape: one document per round keyed by round name.
type roundDoc struct {
	ID    string        `bson:"_id"`
	Games []models.Game `bson:"games"`
}

type GameStore struct {
	db *mongo.Database
}

func NewGameStore(db *mongo.Database) *GameStore {
	return &GameStore{db: db}
}

// GetRound returns the games of one round in insertion order. A round with
// no document yet is an empty list, not an error.
func (s *GameStore) GetRound(ctx context.Context, round string) ([]models.Game, error) {
	var doc roundDoc
	err := s.db.Collection(gamesCollection).FindOne(ctx, bson.M{"_id": round}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.Game{}, nil
		}
		return nil, fmt.Errorf("failed to load round %s: %w", round, err)
	}

	if doc.Games == nil {
		return []models.Game{}, nil
	}
	return doc.Games, nil
}

// GetRegistry loads every configured round.
func (s *GameStore) GetRegistry(ctx context.Context) (map[string][]models.Game, error) {
	registry := make(map[string][]models.Game, len(models.Rounds))
	for _, round := range models.Rounds {
		games, err := s.GetRound(ctx, round)
		if err != nil {
			return nil, err
		}
		registry[round] = games
	}
	return registry, nil
}

// AddGame appends a game to a round's list, creating the round document on
// first use.
func (s *GameStore) AddGame(ctx context.Context, round string, game models.Game) error {
	_, err := s.db.Collection(gamesCollection).UpdateByID(ctx, round,
		bson.M{"$push": bson.M{"games": game}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to add game to round %s: %w", round, err)
	}

	return nil
}

// SetWinner records the winner on a single game inside a round document.
func (s *GameStore) SetWinner(ctx context.Context, round string, gameID int64, winner string) error {
	res, err := s.db.Collection(gamesCollection).UpdateOne(ctx,
		bson.M{"_id": round, "games.id": gameID},
		bson.M{"$set": bson.M{"games.$.winner": winner}},
	)
	if err != nil {
		return fmt.Errorf("failed to set winner for game %d in round %s: %w", gameID, round, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("game %d not found in round %s", gameID, round)
	}

	return nil
}
