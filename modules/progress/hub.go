// Package progress broadcasts generation lifecycle events to connected
// WebSocket clients so the UI can show what phase a long-running workflow
// (especially video generation) is in.
package progress

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event - one lifecycle update for an in-flight generation request
type Event struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	FormatID  string `json:"formatId"`
	Phase     string `json:"phase"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

// GenerationStatus - publish one phase transition to all listeners
func (h *Hub) GenerationStatus(requestID, formatID, phase, message string) {
	event := Event{
		Type:      "generation_status",
		RequestID: requestID,
		FormatID:  formatID,
		Phase:     phase,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal progress event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Slow consumer: drop it rather than blocking the workflow
			close(c.send)
			delete(h.clients, c)
		}
	}
}

func (h *Hub) addClient(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("👤 Progress listener connected (total: %d)", count)
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[c]; exists {
		close(c.send)
		delete(h.clients, c)
		log.Printf("👋 Progress listener disconnected (remaining: %d)", len(h.clients))
	}
}
