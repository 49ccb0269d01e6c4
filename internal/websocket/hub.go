package websocket

import (
	"encoding/json"

	"github.com/isdelr/warbler-be/internal/models"
	"github.com/rs/zerolog/log"
)

// Hub maintains the set of connected feed clients and broadcasts new
// warbles to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for global broadcast.
	Broadcast chan []byte

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run starts the Hub's message processing loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Info().Int("total_clients", len(h.clients)).Msg("Feed client connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Int("total_clients", len(h.clients)).Msg("Feed client disconnected")
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastNewMessage pushes a freshly posted warble to every connected
// client. Marshal failures are logged, never fatal to the poster.
func (h *Hub) BroadcastNewMessage(msg models.Message) {
	payload, err := json.Marshal(Message{Action: "message.new", Payload: msg})
	if err != nil {
		log.Error().Err(err).Str("message_id", msg.ID).Msg("Failed to marshal feed event")
		return
	}
	h.Broadcast <- payload
}
