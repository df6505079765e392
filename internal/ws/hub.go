// Package ws pushes catalog change events to connected site clients, the way
// the hosted store's realtime channel did. Subscribers are anonymous and
// read-only; there is nothing to receive from them but pongs.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is one catalog notification, e.g. {"type":"catalog.synced"}.
type Event struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

const (
	// EventCatalogSynced fires after a successful full-replace sync.
	EventCatalogSynced = "catalog.synced"
	// EventSellersChanged fires after a seller upsert or delete.
	EventSellersChanged = "sellers.changed"
)

type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Broadcast queues an event for every connected client. A full broadcast
// buffer drops the event rather than blocking a sync operation.
func (h *Hub) Broadcast(eventType string) {
	payload, err := json.Marshal(Event{Type: eventType, Timestamp: time.Now().Unix()})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("event dropped, broadcast buffer full", zap.String("event", eventType))
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case payload := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Slow consumer, let its write pump die.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount reports how many clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		client.conn.Close()
	}
	h.clients = make(map[*Client]bool)
}
