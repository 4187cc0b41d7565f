// Package websocket pushes catalog state to connected browsers.
package websocket

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/logger"
)

const sendBuffer = 256

// ClientGauge tracks the number of connected clients.
type ClientGauge interface {
	ClientConnected()
	ClientDisconnected()
}

// Hub maintains the set of active clients and fans broadcasts out to them.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	gauge  ClientGauge
	logger logger.Logger

	mu sync.RWMutex
}

func NewHub(gauge ClientGauge, log logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		gauge:      gauge,
		logger:     log,
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes every
// client's send channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				h.dropLocked(client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.gauge.ClientConnected()
			h.logger.Debug("websocket client connected", logger.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.dropLocked(client)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected", logger.Int("total", total))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.logger.Warn("websocket client too slow, dropping connection")
					h.dropLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues message for every client. It never blocks; when the queue
// is full the message is dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		h.logger.Error("failed to encode websocket message",
			logger.String("type", string(msg.Type)),
			logger.String("error", err.Error()),
		)
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	default:
		h.logger.Warn("broadcast channel full, dropping message", logger.String("type", string(msg.Type)))
	}
}

// Register adds client. Once the hub has stopped the client's send channel is
// closed right away.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) dropLocked(client *Client) {
	delete(h.clients, client)
	h.gauge.ClientDisconnected()
	close(client.send)
}
