package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client authenticates with a bearer token, not cookies,
	// so cross-origin upgrades carry no ambient credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client owns one websocket connection. The send channel is never closed;
// teardown is signalled through done, so a broadcast racing a disconnect can
// never send on a closed channel.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan Event
	done      chan struct{}
	userID    int
	topics    map[string]struct{}
	closeOnce sync.Once
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// clientMessage is what subscribers send upstream: subscription management
// and typing presence for support conversations.
type clientMessage struct {
	Action string `json:"action"` // subscribe, unsubscribe, typing
	Topic  string `json:"topic"`
	Typing bool   `json:"typing,omitempty"`
}

// ServeWS upgrades the request and runs the connection until either side
// closes it.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID int) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan Event, sendBuffer),
		done:   make(chan struct{}),
		userID: userID,
		topics: make(map[string]struct{}),
	}
	h.register(client)

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.close()
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket read error", zap.Error(err))
			}
			return
		}

		switch msg.Action {
		case "subscribe":
			c.hub.subscribe(c, msg.Topic)
		case "unsubscribe":
			c.hub.unsubscribe(c, msg.Topic)
		case "typing":
			c.broadcastTyping(msg.Topic, msg.Typing)
		}
	}
}

func (c *Client) broadcastTyping(topic string, typing bool) {
	payload, err := json.Marshal(map[string]any{"userId": c.userID, "typing": typing})
	if err != nil {
		return
	}
	c.hub.Broadcast(Event{Topic: topic, Event: "typing", Payload: payload})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
