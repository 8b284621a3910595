package events

import (
	"sync"

	"meetingroom/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingDeleted = "booking.deleted"
)

// Event is pushed to every subscribed websocket client when the booking store
// changes.
type Event struct {
	Type      string          `json:"type"`
	Booking   *domain.Booking `json:"booking,omitempty"`
	BookingID string          `json:"bookingId,omitempty"`
}

// subscriber serializes writes to one connection. The websocket protocol
// allows at most one concurrent writer per connection, and broadcasts can
// arrive from any request goroutine.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *subscriber) send(event Event) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.conn.WriteJSON(event)
}

// Hub fans booking events out to connected websocket clients. It satisfies
// the booking service's EventSink.
type Hub struct {
	subscribers map[string]*subscriber
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
	}
}

func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.subscribers[connID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.subscribers[connID] = &subscriber{conn: conn}
}

func (h *Hub) Unregister(connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if sub, exists := h.subscribers[connID]; exists && sub != nil {
		_ = sub.conn.Close()
		delete(h.subscribers, connID)
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers)
}

func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mutex.RUnlock()

	for id, sub := range subs {
		if err := sub.send(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) BookingCreated(b domain.Booking) {
	h.Broadcast(Event{Type: TypeBookingCreated, Booking: &b})
}

func (h *Hub) BookingDeleted(id string) {
	h.Broadcast(Event{Type: TypeBookingDeleted, BookingID: id})
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, sub := range h.subscribers {
		if sub != nil {
			_ = sub.conn.Close()
		}
		delete(h.subscribers, id)
	}
}
