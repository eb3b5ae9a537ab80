package live

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is a real-time notification pushed to connected dashboard clients.
type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id,omitempty"`
	At        time.Time `json:"at"`
}

const EventInventoryChanged = "inventory_changed"

// Hub fans booking-write events out to every open dashboard connection.
// Clients are expected to refetch occupancy when they receive one.
type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// InventoryChanged satisfies the booking service's notifier contract.
func (h *Hub) InventoryChanged(bookingID int64) {
	h.Broadcast(Event{
		Type:      EventInventoryChanged,
		BookingID: bookingID,
		At:        time.Now().UTC(),
	})
}

func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("live: dropping connection after write error: %v", err)
			h.Unregister(conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
