package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"equiprent/internal/domain"
)

// Event is one booking lifecycle notification pushed to dashboards.
type Event struct {
	Event     string    `json:"event"`
	BookingID int64     `json:"booking_id"`
	Status    string    `json:"status"`
	Payment   string    `json:"payment_status"`
	At        time.Time `json:"at"`
}

// Hub fans booking events out to every connected manager dashboard.
type Hub struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{connections: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[conn]; ok {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// PublishBookingEvent implements booking.EventPublisher. Slow or dead
// connections are dropped rather than blocking the caller.
func (h *Hub) PublishBookingEvent(event string, b *domain.Booking) {
	msg := Event{
		Event:     event,
		BookingID: b.ID,
		Status:    string(b.Status),
		Payment:   string(b.PaymentStatus),
		At:        time.Now(),
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for c := range h.connections {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteJSON(msg); err != nil {
			h.Unregister(c)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		_ = c.Close()
	}
	h.connections = make(map[*websocket.Conn]struct{})
}
