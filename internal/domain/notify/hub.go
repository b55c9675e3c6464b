package notify

import (
	"context"
	"encoding/json"
	"expvar"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis channel carrying admin panel events across instances
const adminEventsChannel = "notify:admin_events"

var (
	wsConnectionsGauge   = expvar.NewInt("websocket_connections")
	wsEventsSentTotal    = expvar.NewInt("websocket_events_sent_total")
	wsEventsDroppedTotal = expvar.NewInt("websocket_events_dropped_total")
)

// Event is pushed to every connected admin panel
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Connection represents a connected admin panel
type Connection struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans admin events out to connected panels. With Redis configured
// the fan-out crosses instances via Pub/Sub; without it events stay
// local, which is fine for a single-process deployment.
type Hub struct {
	connections map[*Connection]bool
	redis       *redis.Client
	pubsub      *redis.PubSub

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates the admin event hub
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, adminEventsChannel)
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			h.mu.Unlock()
			wsConnectionsGauge.Add(1)
			log.Debug().Msg("Admin panel connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				close(conn.Send)
				wsConnectionsGauge.Add(-1)
			}
			h.mu.Unlock()
			log.Debug().Msg("Admin panel disconnected")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcastLocal([]byte(msg.Payload))
		}
	}
}

// Publish implements the event publisher used by the inquiry and
// booking services.
func (h *Hub) Publish(ctx context.Context, eventType string, data interface{}) {
	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal event")
		return
	}

	if h.redis != nil {
		if err := h.redis.Publish(ctx, adminEventsChannel, payload).Err(); err != nil {
			log.Error().Err(err).Msg("Redis publish failed")
			h.broadcastLocal(payload)
		}
		return
	}

	h.broadcastLocal(payload)
}

func (h *Hub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections {
		select {
		case conn.Send <- payload:
			wsEventsSentTotal.Add(1)
		default:
			wsEventsDroppedTotal.Add(1)
			log.Warn().Msg("WebSocket send buffer full")
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// ConnectionCount returns number of local connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}
}
