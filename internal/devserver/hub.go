package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

// MessageType represents the type of a hub message.
type MessageType string

const (
	MessageHello  MessageType = "hello"
	MessageCommit MessageType = "commit"
	MessageFault  MessageType = "fault"
)

// Message is sent to clients after every commit.
type Message struct {
	Type   MessageType   `json:"type"`
	Seq    uint64        `json:"seq"`
	Reason string        `json:"reason,omitempty"`
	Error  string        `json:"error,omitempty"`
	HTML   string        `json:"html"`
	Tree   *surface.Tree `json:"tree,omitempty"`
}

const writeWait = time.Second

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub pushes the surface to WebSocket clients after every commit. It
// implements vrec.Observer; register it on the root it should follow and
// Attach the root's container.
type Hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	source   atomic.Pointer[surface.MemNode]
	seq      atomic.Uint64
	logger   *slog.Logger
}

var _ vrec.Observer = (*Hub)(nil)

// NewHub creates a hub with no clients.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		logger: logger.With("component", "devserver.hub"),
	}
}

// Attach sets the container whose markup is published.
func (h *Hub) Attach(container *surface.MemNode) {
	h.source.Store(container)
}

// ComponentRendered implements vrec.Observer.
func (h *Hub) ComponentRendered(vdom.VKind, string) {}

// BatchFlushed implements vrec.Observer.
func (h *Hub) BatchFlushed(int) {}

// CommitStarted implements vrec.Observer.
func (h *Hub) CommitStarted(reason, name string) func(err error) {
	return func(err error) {
		if h.source.Load() == nil {
			return
		}
		typ := MessageCommit
		if err != nil {
			typ = MessageFault
		}
		h.broadcast(h.Message(typ, reason, err))
	}
}

// Message builds a message from the attached container. It reads the
// surface and must run on the loop goroutine.
func (h *Hub) Message(typ MessageType, reason string, err error) Message {
	msg := Message{Type: typ, Seq: h.seq.Add(1), Reason: reason}
	if err != nil {
		msg.Error = err.Error()
	}
	if body := h.source.Load(); body != nil {
		msg.HTML = surface.InnerHTML(body)
		msg.Tree = surface.Snapshot(body)
	}
	return msg
}

// HandleWebSocket upgrades the request, sends hello and keeps the client
// registered until it disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request, hello func() (Message, error)) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.logger.Debug("client connected", "clients", h.ClientCount())

	if msg, err := hello(); err == nil {
		if data, err := json.Marshal(msg); err == nil {
			c.send(data)
		}
	}

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}

// broadcast sends a message to all connected clients.
func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode message", "error", err)
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(data); err != nil {
			h.remove(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.conn.Close()
		delete(h.clients, c)
	}
}
