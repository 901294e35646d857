package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub, userID int) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, userID)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func waitForSubscribers(t *testing.T, hub *Hub, topic string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.topics[topic])
		hub.mu.RUnlock()
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("topic %s never reached %d subscribers", topic, want)
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, 1)

	require.NoError(t, conn.WriteJSON(clientMessage{Action: "subscribe", Topic: "table:loan_applications"}))
	waitForSubscribers(t, hub, "table:loan_applications", 1)

	hub.Publish("loan_applications", "UPDATE", 42)

	event := readEvent(t, conn)
	assert.Equal(t, "table:loan_applications", event.Topic)
	assert.Equal(t, "change", event.Event)

	var payload changePayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, 42, payload.ID)
	assert.Equal(t, "UPDATE", payload.Action)
}

func TestHub_UnsubscribedTopicNotDelivered(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, 1)

	require.NoError(t, conn.WriteJSON(clientMessage{Action: "subscribe", Topic: "table:withdrawals"}))
	waitForSubscribers(t, hub, "table:withdrawals", 1)

	hub.Publish("user_savings", "UPDATE", 7)
	hub.Publish("withdrawals", "INSERT", 9)

	// Only the subscribed topic comes through.
	event := readEvent(t, conn)
	assert.Equal(t, "table:withdrawals", event.Topic)
}

func TestHub_TypingPresenceFansOut(t *testing.T) {
	hub := NewHub()
	sender := dialTestHub(t, hub, 1)
	watcher := dialTestHub(t, hub, 2)

	require.NoError(t, watcher.WriteJSON(clientMessage{Action: "subscribe", Topic: "support:15"}))
	waitForSubscribers(t, hub, "support:15", 1)

	require.NoError(t, sender.WriteJSON(clientMessage{Action: "typing", Topic: "support:15", Typing: true}))

	event := readEvent(t, watcher)
	assert.Equal(t, "support:15", event.Topic)
	assert.Equal(t, "typing", event.Event)

	var payload struct {
		UserID int  `json:"userId"`
		Typing bool `json:"typing"`
	}
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, 1, payload.UserID)
	assert.True(t, payload.Typing)
}

func TestHub_BroadcastSurvivesConcurrentDisconnect(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, 1)

	require.NoError(t, conn.WriteJSON(clientMessage{Action: "subscribe", Topic: "table:user_savings"}))
	waitForSubscribers(t, hub, "table:user_savings", 1)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				hub.Publish("user_savings", "UPDATE", j)
			}
		}()
	}

	// Tear the connection down while the broadcasts are in flight.
	conn.Close()
	wg.Wait()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		n := len(hub.clients)
		hub.mu.RUnlock()
		if n == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("client was never unregistered")
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, 1)

	require.NoError(t, conn.WriteJSON(clientMessage{Action: "subscribe", Topic: "table:support_requests"}))
	waitForSubscribers(t, hub, "table:support_requests", 1)
	require.NoError(t, conn.WriteJSON(clientMessage{Action: "unsubscribe", Topic: "table:support_requests"}))
	waitForSubscribers(t, hub, "table:support_requests", 0)

	hub.Publish("support_requests", "INSERT", 3)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var event Event
	err := conn.ReadJSON(&event)
	assert.Error(t, err)
}
