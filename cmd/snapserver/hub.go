package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // demo transport; restrict in a real deployment
	},
}

// client is one connected spectator.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans out GameState snapshots to every WebSocket client watching a
// single play, grounded on the teacher's optimization-service WebSocket
// hub but simplified: one play per hub, no per-user routing.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

// HandleWebSocket upgrades the connection and registers it with the hub.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithComponent("snapserver").WithError(err).Error("failed to upgrade websocket connection")
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, 16)}
	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()

	go h.writePump(cl)
	go h.readPump(cl)
}

// Broadcast marshals the snapshot once and fans it out to every client,
// skipping this snapshot for any client whose send buffer is full
// rather than blocking.
func (h *Hub) Broadcast(gs *model.GameState) {
	data, err := json.Marshal(gs)
	if err != nil {
		logger.WithComponent("snapserver").WithError(err).Error("failed to marshal snapshot")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			logger.WithComponent("snapserver").Warn("client send buffer full, dropping snapshot")
		}
	}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
}

func (h *Hub) readPump(cl *client) {
	defer func() {
		h.unregister(cl)
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for msg := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
