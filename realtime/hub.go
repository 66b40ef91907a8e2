// Package realtime pushes new-message events to connected clients over
// websockets. Delivery is fire-and-forget: a recipient without an active
// connection simply sees the message on their next fetch.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/charlesdev96/charlie-chat-app/auth"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/infinitybotlist/eureka/jsonimpl"
	"go.uber.org/zap"
)

const (
	presenceTTL = 60 * time.Second

	// Cross-instance fanout channel. Every instance subscribes; whichever one
	// holds the receiver's connection delivers.
	eventChannel = "events:messages"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client wraps a connection with a write lock. The websocket library allows
// at most one concurrent writer per connection, so every outbound write goes
// through send.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(ev)
}

type hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*client
}

var connections = &hub{clients: make(map[uuid.UUID]*client)}

// Event is the wire format pushed to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type pushEnvelope struct {
	ReceiverID uuid.UUID `json:"receiverId"`
	Event      Event     `json:"event"`
}

// Handler upgrades an authenticated request to a websocket and keeps the
// connection registered until the client goes away. The token is taken from
// the query string since browsers cannot set headers on websocket dials.
func Handler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token query parameter required", http.StatusForbidden)
		return
	}

	claims, err := auth.VerifyJWT(token)
	if err != nil {
		http.Error(w, "authentication invalid", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		state.Logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	register(claims.UserID, conn)
	defer unregister(claims.UserID, conn)

	// Drain the connection; clients only receive on this channel. Reads fail
	// once the peer disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		refreshPresence(claims.UserID)
	}
}

// Listen subscribes to the cross-instance event channel and forwards incoming
// events to locally connected clients. Called once at startup.
func Listen() {
	sub := state.Redis.Subscribe(state.Context, eventChannel)

	go func() {
		for msg := range sub.Channel() {
			var env pushEnvelope
			if err := jsonimpl.Unmarshal([]byte(msg.Payload), &env); err != nil {
				state.Logger.Warn("Discarding malformed push event", zap.Error(err))
				continue
			}

			deliverLocal(env.ReceiverID, env.Event)
		}
	}()
}

func register(userID uuid.UUID, conn *websocket.Conn) {
	connections.mu.Lock()
	if old, ok := connections.clients[userID]; ok {
		old.conn.Close()
	}
	connections.clients[userID] = &client{conn: conn}
	connections.mu.Unlock()

	refreshPresence(userID)
}

func unregister(userID uuid.UUID, conn *websocket.Conn) {
	connections.mu.Lock()
	if c, ok := connections.clients[userID]; ok && c.conn == conn {
		delete(connections.clients, userID)
	}
	connections.mu.Unlock()

	conn.Close()

	if err := state.Redis.Del(state.Context, presenceKey(userID)).Err(); err != nil {
		state.Logger.Warn("Failed to clear presence", zap.String("userId", userID.String()), zap.Error(err))
	}
}

func presenceKey(userID uuid.UUID) string {
	return "presence:" + userID.String()
}

func refreshPresence(userID uuid.UUID) {
	err := state.Redis.Set(state.Context, presenceKey(userID), "1", presenceTTL).Err()
	if err != nil {
		state.Logger.Warn("Failed to refresh presence", zap.String("userId", userID.String()), zap.Error(err))
	}
}

// IsOnline reports whether the user currently has a registered connection on
// this instance or a live presence key left by another instance.
func IsOnline(userID uuid.UUID) bool {
	connections.mu.RLock()
	_, ok := connections.clients[userID]
	connections.mu.RUnlock()

	if ok {
		return true
	}

	n, err := state.Redis.Exists(state.Context, presenceKey(userID)).Result()
	if err != nil {
		return false
	}

	return n > 0
}

func deliverLocal(receiverID uuid.UUID, ev Event) {
	connections.mu.RLock()
	c, ok := connections.clients[receiverID]
	connections.mu.RUnlock()

	if !ok {
		return
	}

	if err := c.send(ev); err != nil {
		state.Logger.Warn("Failed to push event", zap.String("receiverId", receiverID.String()), zap.Error(err))
	}
}

// NotifyNewMessage pushes a newMessage event to the receiver wherever they
// are connected. The presence registry gates the publish; a receiver with no
// live presence is skipped. Absence of a connection is not an error.
func NotifyNewMessage(receiverID uuid.UUID, message *types.Message) {
	if !IsOnline(receiverID) {
		return
	}

	ev := Event{
		Event: "newMessage",
		Data:  message,
	}

	payload, err := jsonimpl.Marshal(pushEnvelope{
		ReceiverID: receiverID,
		Event:      ev,
	})
	if err != nil {
		state.Logger.Warn("Failed to encode push event", zap.String("receiverId", receiverID.String()), zap.Error(err))
		return
	}

	if err := state.Redis.Publish(state.Context, eventChannel, payload).Err(); err != nil {
		// Fanout is unavailable; deliver to a local connection if there is one.
		state.Logger.Warn("Failed to publish push event", zap.String("receiverId", receiverID.String()), zap.Error(err))
		deliverLocal(receiverID, ev)
	}
}
