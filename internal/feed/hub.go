package feed

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the WebSocket clients watching the live progress feed and
// fans events out to them. Slow or dead clients are dropped on the first
// failed write; watchers are expected to reconnect.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
