package sse

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/arenahq/arena/internal/model"
)

// Hub fans events out to the SSE clients watching a single tournament
type Hub struct {
	tournamentID model.TournamentID
	clients      map[*Client]bool
	mu           sync.RWMutex
	logger       *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub creates a new Hub for a tournament
func NewHub(tournamentID model.TournamentID, logger *slog.Logger) *Hub {
	return &Hub{
		tournamentID: tournamentID,
		clients:      make(map[*Client]bool),
		logger:       logger.With(slog.String("tournament", string(tournamentID))),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		broadcast:    make(chan []byte, 256),
		done:         make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client registered", slog.Int("total_clients", count))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client unregistered", slog.Int("total_clients", count))

		case message := <-h.broadcast:
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
				h.logger.Warn("sse messages dropped - client buffers full", slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("sse hub stopped")
			return
		}
	}
}

// Register adds a client to the hub. No-op once the hub is closed.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub. After Close the event loop
// is gone and has already dropped every client, so the send must not
// block.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastEvent sends an SSE event with a name and data to every client
func (h *Hub) BroadcastEvent(eventName, data string) {
	msg := formatSSEMessage(eventName, data)
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage renders an SSE frame; multi-line data gets a "data: "
// prefix per line as the protocol requires
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventName)
	b.WriteByte('\n')
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// HubManager manages hubs across tournaments
type HubManager struct {
	hubs   map[model.TournamentID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.TournamentID]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// GetOrCreateHub returns the hub for a tournament, creating one if needed
func (m *HubManager) GetOrCreateHub(tournamentID model.TournamentID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[tournamentID]; ok {
		return hub
	}

	hub := NewHub(tournamentID, m.logger)
	m.hubs[tournamentID] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a tournament, or nil if none exists
func (m *HubManager) GetHub(tournamentID model.TournamentID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[tournamentID]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(tournamentID model.TournamentID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[tournamentID]; ok {
		hub.Close()
		delete(m.hubs, tournamentID)
	}
}
