package websocket

import (
	"log"

	"github.com/gorilla/websocket"
)

// listenClient drains inbound frames; the feed is server push only, reading
// is just how we notice the client going away.
func listenClient(clientID string, conn *websocket.Conn) {
	defer func() {
		log.Printf("Live client disconnected: %s", clientID)
		unregisterClient(clientID)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
