package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"moodmovie-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ClusterChannel carries session-targeted messages between instances.
const ClusterChannel = "moodmovie:session_events"

// Message is the frame written to clients.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type envelope struct {
	SessionID string          `json:"session_id"`
	Message   json.RawMessage `json:"message"`
}

// Hub tracks websocket clients per recommendation session. With Redis configured
// every message goes through the cluster channel, which is also how the local
// instance receives it; without Redis delivery is in-process.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

// Run serves registrations until ctx is cancelled. After that Register and
// Unregister return immediately so connection goroutines can exit.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.SessionID] == nil {
				h.clients[client.SessionID] = make(map[*Client]struct{})
			}
			h.clients[client.SessionID][client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.SessionID]; ok {
				if _, ok := set[client]; ok {
					delete(set, client)
					close(client.Send)
				}
				if len(set) == 0 {
					delete(h.clients, client.SessionID)
				}
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"session_id": client.SessionID})
		}
	}
}

// Register reports whether the hub accepted the client.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// SendToSession pushes a typed message to every client of a session, on any
// instance.
func (h *Hub) SendToSession(ctx context.Context, sessionID, msgType string, data interface{}) error {
	frame, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		return err
	}

	if h.rdb == nil {
		h.deliver(sessionID, frame)
		return nil
	}

	payload, err := json.Marshal(envelope{SessionID: sessionID, Message: frame})
	if err != nil {
		return err
	}
	return h.rdb.Publish(ctx, ClusterChannel, payload).Err()
}

// ClientCount is the number of local connections for a session.
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// deliver writes to local clients without blocking. A client whose buffer is full
// misses the frame; its own pumps handle disconnects.
func (h *Hub) deliver(sessionID string, frame []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for client := range h.clients[sessionID] {
		select {
		case client.Send <- frame:
			sent++
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
		}
	}
	return sent
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			h.logger.Warn("Hub", "Invalid cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}
		h.deliver(env.SessionID, env.Message)
	}
}
