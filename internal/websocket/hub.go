package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeDashboard MessageType = "dashboard_updated"
	MessageTypeAnalytics MessageType = "analytics_updated"
)

// TopicDashboard is the feed pushed to the live dashboard page
const TopicDashboard = "dashboard"

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType `json:"type"`
	Topic     string      `json:"topic"`
	Data      any         `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	id    uuid.UUID
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	topic string
}

// Hub manages WebSocket connections per topic
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	logger     *zap.Logger
	now        func() time.Time
}

// NewHub creates a new Hub. allowedOrigins empty or containing "*" accepts
// every origin.
func NewHub(logger *zap.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		done:       make(chan struct{}),
		logger:     logger,
		now:        time.Now,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || len(set) == 0 || set[origin]
	}
}

// Run starts the hub's main loop and returns when ctx is done. All open
// client connections are closed on return.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for topic, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
				delete(h.clients, topic)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.topic] == nil {
				h.clients[client.topic] = make(map[*Client]bool)
			}
			h.clients[client.topic][client] = true
			count := len(h.clients[client.topic])
			h.mu.Unlock()
			h.logger.Debug("websocket client registered",
				zap.String("client_id", client.id.String()),
				zap.String("topic", client.topic),
				zap.Int("total", count),
			)

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("failed to marshal websocket message", zap.Error(err))
				continue
			}

			h.mu.RLock()
			targets := make([]*Client, 0, len(h.clients[message.Topic]))
			for client := range h.clients[message.Topic] {
				targets = append(targets, client)
			}
			h.mu.RUnlock()

			h.logger.Debug("broadcasting websocket message",
				zap.String("type", string(message.Type)),
				zap.String("topic", message.Topic),
				zap.Int("clients", len(targets)),
			)

			for _, client := range targets {
				select {
				case client.send <- data:
				default:
					// slow consumer
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.clients[client.topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.topic)
	}
	h.logger.Debug("websocket client unregistered",
		zap.String("client_id", client.id.String()),
		zap.String("topic", client.topic),
		zap.Int("remaining", len(clients)),
	)
}

// Broadcast queues data for every client subscribed to topic. It does not
// block; the message is dropped when the queue is full.
func (h *Hub) Broadcast(topic string, msgType MessageType, data any) bool {
	msg := &Message{
		Type:      msgType,
		Topic:     topic,
		Data:      data,
		Timestamp: h.now().UnixMilli(),
	}
	select {
	case h.broadcast <- msg:
		return true
	default:
		h.logger.Warn("websocket broadcast queue full, dropping message", zap.String("topic", topic))
		return false
	}
}

// ClientCount returns the number of clients subscribed to topic
func (h *Hub) ClientCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// ServeWS upgrades the request and subscribes the connection to topic.
// initial, when non-nil, is sent before any broadcast.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, topic string, initial *Message) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:    uuid.New(),
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		topic: topic,
	}
	if initial != nil {
		initial.Topic = topic
		if initial.Timestamp == 0 {
			initial.Timestamp = h.now().UnixMilli()
		}
		if data, err := json.Marshal(initial); err == nil {
			client.send <- data
		}
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only consumes control frames; the feed is server to client.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
