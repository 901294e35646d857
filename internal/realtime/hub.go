// Package realtime fans table change events and presence signals out to
// websocket subscribers, replacing client polling for loan, savings and
// support state.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/helapesa/helapesa/internal/metrics"
	"go.uber.org/zap"
)

// Event is the wire format pushed to subscribers. Table change events use
// topic "table:<name>"; support chat presence uses "support:<id>".
type Event struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type changePayload struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     int    `json:"id"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	topics  map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		topics:  make(map[string]map[*Client]struct{}),
	}
}

// Publish notifies subscribers of "table:<table>" that a row changed.
// It satisfies the Publisher interface the services depend on.
func (h *Hub) Publish(table, action string, id int) {
	payload, err := json.Marshal(changePayload{Table: table, Action: action, ID: id})
	if err != nil {
		zap.L().Error("failed to encode change payload", zap.Error(err))
		return
	}
	h.Broadcast(Event{Topic: "table:" + table, Event: "change", Payload: payload})
}

// Broadcast sends an event to every subscriber of its topic. Clients whose
// send buffer is full are dropped rather than allowed to stall the rest.
// A client's send channel stays open for its lifetime, so racing a
// concurrent disconnect here is safe.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	subscribers := make([]*Client, 0, len(h.topics[event.Topic]))
	for client := range h.topics[event.Topic] {
		subscribers = append(subscribers, client)
	}
	h.mu.RUnlock()

	for _, client := range subscribers {
		select {
		case client.send <- event:
		case <-client.done:
		default:
			zap.L().Warn("dropping slow realtime client", zap.Int("userID", client.userID))
			h.unregister(client)
			client.close()
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	metrics.RealtimeClients.Inc()
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for topic := range client.topics {
		delete(h.topics[topic], client)
		if len(h.topics[topic]) == 0 {
			delete(h.topics, topic)
		}
	}
	metrics.RealtimeClients.Dec()
}

func (h *Hub) subscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]struct{})
	}
	h.topics[topic][client] = struct{}{}
	client.topics[topic] = struct{}{}
}

func (h *Hub) unsubscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(client.topics, topic)
	if subs := h.topics[topic]; subs != nil {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
}
