package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/picksleague/picks-services/internal/comm"
	"github.com/picksleague/picks-services/internal/picksvc/models"
	log "github.com/sirupsen/logrus"
)

// Broker publishes change notifications to NATS after writes. It stands in
// for the document store's own change feed: socketsvc relays each message to
// connected web clients, which re-fetch what they display.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

// GamesChanged announces that a round's game list changed.
func (b *Broker) GamesChanged(round string, games []models.Game) {
	data, err := json.Marshal(comm.GamesUpdate{Round: round, Games: games})
	if err != nil {
		log.Errorf("Error marshaling games update for round %s: %s", round, err)
		return
	}

	b.publish(comm.SubjectGamesPrefix+round, comm.WSMessage{Type: "games-updated", Data: data})
}

// UsersChanged announces that a user document changed (new account, pick,
// or login stamp); clients refresh the leaderboard and their own picks.
func (b *Broker) UsersChanged() {
	b.publish(comm.SubjectUsers, comm.WSMessage{Type: "users-updated"})
}

func (b *Broker) publish(topic string, msg comm.WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error marshaling notification for topic %s: %s", topic, err)
		return
	}

	if err := b.Conn.Publish(topic, payload); err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
	}
}
