package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/picksleague/picks-services/internal/picksvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

type UserStore struct {
	db *mongo.Database
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("an account already exists for %s", user.Email)
		}
		return fmt.Errorf("could not create user: %w", err)
	}

	return nil
}

// GetByID returns nil, nil when the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u := &models.User{}
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// GetByEmail returns nil, nil when no account uses the address.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListAll returns every user document.
func (s *UserStore) ListAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// TouchLastLogin stamps the user's lastLogin field.
func (s *UserStore) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.db.Collection(usersCollection).UpdateByID(ctx, id,
		bson.M{"$set": bson.M{"lastLogin": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update lastLogin: %w", err)
	}

	return nil
}

// SetPick writes one pick under picks.<round>.<gameID> and stamps
// lastUpdated. Standard rounds persist the bare team name. Confidence picks
// merge field by field, so a team choice and a later points choice land in
// the same sub-document without clobbering each other.
func (s *UserStore) SetPick(ctx context.Context, userID, round, gameID string, pick models.Pick) error {
	path := "picks." + round + "." + gameID

	set := bson.M{"lastUpdated": time.Now()}
	if round == models.ConfidenceRound {
		if pick.Team != "" {
			set[path+".team"] = pick.Team
		}
		if pick.Points > 0 {
			set[path+".points"] = pick.Points
		}
	} else {
		set[path] = pick.Team
	}

	res, err := s.db.Collection(usersCollection).UpdateByID(ctx, userID, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to save pick: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}
