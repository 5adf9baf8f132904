package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"studytrail-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans study updates out to connected readers: per-user progress pushes
// and broadcast connectivity notices. Redis carries the same payloads across
// instances so a user connected elsewhere still gets their update.
type Hub struct {
	// UserID -> connections (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendProgress pushes a progress update to every connection one user holds.
func (h *Hub) SendProgress(userID uuid.UUID, update any) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "progress",
		"data": update,
	})
	h.sendLocal(userID, data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": userID.String(),
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// BroadcastConnectivity tells every connected client whether the backend's
// study services are reachable.
func (h *Hub) BroadcastConnectivity(offline bool) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "connectivity",
		"data": map[string]bool{"offline": offline},
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_user_id": "*",
			"message":        json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	var dropped []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				dropped = append(dropped, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropSlowClients(dropped)
}

func (h *Hub) sendLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	var dropped []*Client
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"user_id": userID})
			dropped = append(dropped, client)
		}
	}
	h.mu.RUnlock()
	h.dropSlowClients(dropped)
}

// dropSlowClients hands clients whose Send buffer overflowed back to Run.
// The unregister handler is the only place that closes Send, so a client
// dropped from several goroutines at once is still closed exactly once.
func (h *Hub) dropSlowClients(dropped []*Client) {
	for _, client := range dropped {
		h.unregister <- client
	}
}

// subscribeToRedis replays cluster_events published by sibling instances.
// Every instance subscribes to the same channel and delivers only to the
// users it holds locally; "*" is the broadcast wildcard.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.broadcastLocal(payload.Message)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.sendLocal(uid, payload.Message)
	}
}
