package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/picksleague/picks-services/internal/comm"
	log "github.com/sirupsen/logrus"
)

// Broker consumes change notifications from picksvc and relays them to the
// websocket layer.
type Broker struct {
	Conn      *nats.Conn
	Broadcast func(*comm.WSMessage)
}

func NewBroker(conn *nats.Conn, fncBroadcast func(*comm.WSMessage)) *Broker {
	return &Broker{
		Conn:      conn,
		Broadcast: fncBroadcast,
	}
}

// Subscribe starts consuming every picks.* change subject.
func (b *Broker) Subscribe() (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(comm.SubjectWildcard, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// handleMessages receives a notification from picksvc
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	err := json.Unmarshal(msgNats.Data, &message)
	if err != nil {
		log.Errorf("Error decoding notification on %s: %s", msgNats.Subject, err)
		return
	}

	switch message.Type {
	case "games-updated", "users-updated":
		b.Broadcast(message)
	default:
		log.Warnf("unknown notification type %q on %s", message.Type, msgNats.Subject)
	}
}
