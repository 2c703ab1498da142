package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Hub tracks open notification connections keyed by username. A user may
// hold several connections (multiple tabs); a push goes to all of them.
// Delivery is fire-and-forget: users without an open connection are skipped.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]bool
	logger  zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]bool),
		logger:  log.With().Str("serviceName", "realtimeHub").Logger(),
	}
}

// Push sends the payload to every open connection of the user. Failed
// connections are dropped from the registry.
func (h *Hub) Push(username string, payload any) {
	h.mu.RLock()
	conns, exists := h.clients[username]
	if !exists || len(conns) == 0 {
		h.mu.RUnlock()
		return
	}
	// Copy so the lock is not held while writing to the sockets
	connsCopy := make([]*websocket.Conn, 0, len(conns))
	for conn := range conns {
		connsCopy = append(connsCopy, conn)
	}
	h.mu.RUnlock()

	for _, conn := range connsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			h.logger.Error().Err(err).Str("username", username).Msg("Failed to set write deadline")
			continue
		}
		if err := conn.WriteJSON(payload); err != nil {
			h.logger.Error().Err(err).Str("username", username).Msg("Failed to push notification")
			h.remove(username, conn)
			conn.Close()
		}
	}
}

// Register adds a connection for the user and starts its keepalive loop.
// Blocks until the connection closes.
func (h *Hub) Register(username string, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[username] == nil {
		h.clients[username] = make(map[*websocket.Conn]bool)
	}
	h.clients[username][conn] = true
	h.mu.Unlock()

	defer func() {
		h.remove(username, conn)
		conn.Close()
		h.logger.Info().Str("username", username).Msg("Notification connection closed")
	}()

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Stopping a ticker does not close its channel, so the keepalive loop
	// needs an explicit stop signal or it outlives the connection.
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error().Err(err).Str("username", username).Msg("Notification connection error")
			}
			return
		}
	}
}

func (h *Hub) remove(username string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, exists := h.clients[username]; exists {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, username)
		}
	}
}
