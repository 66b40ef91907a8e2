package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Tests run against the local connection map only. Redis points at a closed
// port so every presence/publish call errors and the hub takes its local
// fallback paths.
func setupHubTest(t *testing.T) {
	t.Helper()

	state.Logger = zap.NewNop()
	state.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

// newTestSocket upgrades a loopback connection, registers the server side
// under userID and returns the client side for reading.
func newTestSocket(t *testing.T, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		connections.mu.RLock()
		_, ok := connections.clients[userID]
		connections.mu.RUnlock()
		if ok {
			return conn
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("connection never registered")
	return nil
}

func TestNotifyNewMessageConcurrentSends(t *testing.T) {
	setupHubTest(t)

	receiverID := uuid.New()
	conn := newTestSocket(t, receiverID)

	// Simultaneous DMs to one online receiver must serialize on the
	// connection's write lock instead of racing inside WriteJSON.
	const senders = 25

	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			NotifyNewMessage(receiverID, &types.Message{Message: "hello"})
		}()
	}
	wg.Wait()

	for i := 0; i < senders; i++ {
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var ev struct {
			Event string        `json:"event"`
			Data  types.Message `json:"data"`
		}
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if ev.Event != "newMessage" {
			t.Errorf("event %d = %q, want newMessage", i, ev.Event)
		}
		if ev.Data.Message != "hello" {
			t.Errorf("payload %d = %q, want hello", i, ev.Data.Message)
		}
	}
}

func TestNotifyNewMessageOfflineReceiver(t *testing.T) {
	setupHubTest(t)

	// No connection, no presence: must be a silent no-op.
	NotifyNewMessage(uuid.New(), &types.Message{Message: "into the void"})
}

func TestIsOnline(t *testing.T) {
	setupHubTest(t)

	userID := uuid.New()

	if IsOnline(userID) {
		t.Fatal("unknown user reported online")
	}

	newTestSocket(t, userID)

	if !IsOnline(userID) {
		t.Error("user with a registered connection reported offline")
	}
}
