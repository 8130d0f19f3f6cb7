// Package stream pushes board changes to watchers over server-sent events or websockets.
package stream

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/azulboard/internal/model"
)

// Message is one named event with a JSON payload
type Message struct {
	Event string
	Data  string
}

// Hub fans events for a single board out to its watchers
type Hub struct {
	boardID model.BoardID
	clients map[*Client]bool
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a new Hub for a board
func NewHub(boardID model.BoardID, logger *slog.Logger) *Hub {
	return &Hub{
		boardID:    boardID,
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("board_id", string(boardID))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Debug("stream hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("stream client registered", slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("stream client unregistered",
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", clientCount))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.deliver(message)

		case <-h.done:
			// Flush what was queued before the close, e.g. board-deleted
			for pending := len(h.broadcast); pending > 0; pending-- {
				h.deliver(<-h.broadcast)
			}
			h.mu.Lock()
			clientCount := len(h.clients)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Debug("stream hub stopped", slog.Int("disconnected_clients", clientCount))
			return
		}
	}
}

func (h *Hub) deliver(message Message) {
	h.mu.RLock()
	dropped := 0
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()
	if dropped > 0 {
		h.logger.Warn("stream messages dropped - client buffer full", slog.Int("dropped", dropped))
	}
}

// Register adds a client to the hub. It returns false if the hub is closed.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastEvent sends a named event to all clients
func (h *Hub) BroadcastEvent(eventName, data string) {
	select {
	case h.broadcast <- Message{Event: eventName, Data: data}:
	default:
		h.logger.Warn("stream broadcast dropped - hub buffer full", slog.String("event", eventName))
	}
}

// Close shuts down the hub and disconnects its clients
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HubManager manages hubs for all watched boards
type HubManager struct {
	hubs   map[model.BoardID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.BoardID]*Hub),
		logger: logger.With(slog.String("component", "stream")),
	}
}

// GetOrCreateHub returns the hub for a board, creating one if it doesn't exist
func (m *HubManager) GetOrCreateHub(boardID model.BoardID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[boardID]; ok {
		return hub
	}

	hub := NewHub(boardID, m.logger)
	m.hubs[boardID] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a board, or nil if nobody is watching it
func (m *HubManager) GetHub(boardID model.BoardID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[boardID]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(boardID model.BoardID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[boardID]; ok {
		hub.Close()
		delete(m.hubs, boardID)
	}
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("stream empty hubs cleaned up", slog.Int("removed", removed))
	}
}

// Close shuts down every hub
func (m *HubManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, hub := range m.hubs {
		hub.Close()
		delete(m.hubs, id)
	}
}
