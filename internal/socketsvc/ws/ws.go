package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/picksleague/picks-services/internal/comm"
	log "github.com/sirupsen/logrus"
)

// Ws tracks live client connections. Every change notification is fanned out
// to every client; the payloads are small and clients filter by type.
type Ws struct {
	connMap sync.Map // socketId -> *websocket.Conn
	writeMu sync.Mutex
}

func NewWs() *Ws {
	return &Ws{}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
}

// Broadcast sends a message to every connected client. Clients whose write
// fails are dropped from the registry.
func (s *Ws) Broadcast(msg *comm.WSMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.connMap.Range(func(key, value interface{}) bool {
		socketId := key.(string)
		conn := value.(*websocket.Conn)

		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("dropping socket %s after write error: %s", socketId, err)
			conn.Close()
			s.connMap.Delete(socketId)
		}
		return true // continue iterating
	})
}
