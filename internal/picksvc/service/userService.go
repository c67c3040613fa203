package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/picksleague/picks-services/internal/picksvc/models"
	"github.com/picksleague/picks-services/internal/picksvc/store"
	"golang.org/x/crypto/bcrypt"
)

// Broadcaster pushes change notifications after successful writes so
// connected clients can refresh. Notifications are best effort and never
// fail the write that triggered them.
type Broadcaster interface {
	GamesChanged(round string, games []models.Game)
	UsersChanged()
}

// UserService handles account creation and sign-in.
type UserService struct {
	userStore   *store.UserStore
	broadcaster Broadcaster
}

func NewUserService(userStore *store.UserStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

// SetBroadcaster sets the change-notification sink.
func (s *UserService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SignUp creates an account and its user document. The username is the
// email local part; the display name falls back to the username.
func (s *UserService) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return nil, errors.New("a valid email address is required")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if displayName == "" {
		displayName = local
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     local,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		LastLogin:    time.Now(),
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.UsersChanged()
	}

	return user, nil
}

// SignIn verifies credentials and stamps lastLogin.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := s.userStore.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	user.LastLogin = time.Now()

	return user, nil
}

// GetUser returns the user document, nil when it does not exist.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// ListUsers returns every user document.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userStore.ListAll(ctx)
}
