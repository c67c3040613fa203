package comm

import (
	"encoding/json"

	"github.com/picksleague/picks-services/internal/picksvc/models"
)

// NATS subjects for change notifications. Game updates carry the round in
// the last token; socketsvc subscribes to the wildcard.
const (
	SubjectGamesPrefix = "picks.games."
	SubjectUsers       = "picks.users"
	SubjectWildcard    = "picks.>"
)

// WSMessage is the envelope relayed to web clients over the socket.
type WSMessage struct {
	Type string          `json:"type"` // e.g. "games-updated", "users-updated"
	Data json.RawMessage `json:"data,omitempty"`
}

// GamesUpdate tells clients one round's game list changed.
type GamesUpdate struct {
	Round string        `json:"round"`
	Games []models.Game `json:"games"`
}
