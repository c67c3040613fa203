package models

import (
	"time"
)

const RoleAdmin = "admin"

// User represents a document in the users collection.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username" bson:"username"`
	DisplayName  string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Role         string    `json:"role,omitempty" bson:"role,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	LastLogin    time.Time `json:"lastLogin" bson:"lastLogin"`
	LastUpdated  time.Time `json:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	Picks        Picks     `json:"picks,omitempty" bson:"picks,omitempty"`
}

// LeaderboardName is the name shown on the leaderboard: the display name when
// one is set, otherwise the username.
func (u *User) LeaderboardName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// IsAdmin reports whether the user may manage games and results.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
