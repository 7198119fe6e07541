package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is sent to every connected page when the site changes.
type reloadMessage struct {
	Type string `json:"type"`
}

const reloadWriteTimeout = 5 * time.Second

// reloadHub tracks the live-reload connections of open pages.
type reloadHub struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func newReloadHub(logger *log.Logger) *reloadHub {
	return &reloadHub{logger: logger, clients: make(map[string]*websocket.Conn)}
}

func (h *reloadHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "err", err)
		return
	}
	id := uuid.NewString()

	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	h.logger.Debug("live reload client connected", "id", id)

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		conn.Close()
		h.logger.Debug("live reload client disconnected", "id", id)
	}()

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", "id", id, "err", err)
			}
			return
		}
	}
}

// broadcast tells every connected page to reload.
func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(reloadWriteTimeout))
		if err := conn.WriteJSON(reloadMessage{Type: "reload"}); err != nil {
			h.logger.Debug("live reload send", "id", id, "err", err)
		}
	}
}

func (h *reloadHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects every client.
func (h *reloadHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
	}
}
