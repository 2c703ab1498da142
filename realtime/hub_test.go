package realtime

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub, username string) string {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(username, conn)
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func waitFor(t *testing.T, condition func() bool, message string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(message)
}

func (h *Hub) connectionCount(username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[username])
}

func TestPushDeliversToRegisteredConnection(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, "ada")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitFor(t, func() bool { return hub.connectionCount("ada") == 1 }, "connection never registered")

	hub.Push("ada", map[string]string{"message": "jon started following you"})

	var payload map[string]string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&payload))
	assert.Equal(t, "jon started following you", payload["message"])
}

func TestPushToUnknownUserIsNoOp(t *testing.T) {
	hub := NewHub()

	// Must not panic or block when nobody is connected
	hub.Push("ghost", map[string]string{"message": "hello"})
}

func TestRegisterReleasesKeepaliveOnClose(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, "ada")

	baseline := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		waitFor(t, func() bool { return hub.connectionCount("ada") == 1 }, "connection never registered")
		require.NoError(t, conn.Close())
		waitFor(t, func() bool { return hub.connectionCount("ada") == 0 }, "connection never deregistered")
	}

	waitFor(t, func() bool { return runtime.NumGoroutine() <= baseline+1 },
		"keepalive goroutines still running after connections closed")
}
