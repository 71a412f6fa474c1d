package ws

import (
	"context"
	"log"
	"sync"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger

	onClientCount func(int)
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

// OnClientCount installs a callback invoked with the client total after every
// connect and disconnect. Call before Run.
func (h *Hub) OnClientCount(fn func(int)) {
	if h == nil {
		return
	}
	h.onClientCount = fn
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client's send channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.countChanged(total)
			if h.logger != nil {
				h.logger.Printf("[WS] connected | total_clients=%d", total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.countChanged(total)
			if h.logger != nil {
				h.logger.Printf("[WS] disconnected | total_clients=%d", total)
			}

		case message := <-h.broadcast:
			h.mutex.Lock()
			total := len(h.clients)
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			remaining := len(h.clients)
			h.mutex.Unlock()
			if remaining != total {
				h.countChanged(remaining)
			}

			if h.logger != nil {
				h.logger.Printf("[WS] broadcast | clients=%d", remaining)
			}
		}
	}
}

func (h *Hub) countChanged(total int) {
	if h.onClientCount != nil {
		h.onClientCount(total)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Broadcast queues message for every connected client. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) Broadcast(message []byte) bool {
	if h == nil {
		return false
	}
	select {
	case h.broadcast <- message:
		return true
	default:
		if h.logger != nil {
			h.logger.Printf("[WS] broadcast dropped | reason=buffer_full")
		}
		return false
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
