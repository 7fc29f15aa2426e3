package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	clients   = make(map[string]*Client)
	clientsMu sync.RWMutex
)

func registerClient(id, userID string, conn *websocket.Conn) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	clients[id] = &Client{
		ID:     id,
		UserID: userID,
		Conn:   conn,
	}
}

func unregisterClient(id string) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	delete(clients, id)
}

func allClients() []*Client {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	all := make([]*Client, 0, len(clients))
	for _, c := range clients {
		all = append(all, c)
	}
	return all
}

// Broadcast pushes msg to every connected client.
func Broadcast(msg interface{}) {
	for _, client := range allClients() {
		client.ConnMu.Lock()
		if err := client.Conn.WriteJSON(msg); err != nil {
			log.Println("Error sending msg to", client.ID, ":", err)
		}
		client.ConnMu.Unlock()
	}
}
