package websocket

import (
	"log"
	"sync"
)

// Hub maintains the set of connected dashboards and broadcasts toast events
// to them. Run owns the client set; everything else talks to it over channels.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for every client.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Channel to signal termination
	stop     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),

		clients: make(map[*Client]bool),
		stop:    make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("[WebSocket Hub] Client registered: %v (Operator: %s)", client.remoteAddr(), client.operator)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[WebSocket Hub] Client unregistered: %v (Operator: %s)", client.remoteAddr(), client.operator)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow consumer, drop it
					close(client.send)
					delete(h.clients, client)
				}
			}
		case <-h.stop:
			log.Println("[WebSocket Hub] Stopping hub")
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// BroadcastMessage hands message to the run loop. It returns without sending
// once the hub is stopped.
func (h *Hub) BroadcastMessage(message []byte) {
	select {
	case h.broadcast <- message:
	case <-h.stop:
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}
