package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// EventType identifies a dashboard feed event.
type EventType string

const (
	EventReservationCreated EventType = "reservation_created"
)

// Event is one message on the admin dashboard feed.
type Event struct {
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservationId"`
	GuestName     string    `json:"guestName"`
	RoomTypeID    string    `json:"roomTypeId"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	TotalAmount   float64   `json:"totalAmount"`
	Timestamp     int64     `json:"timestamp"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans reservation events out to the connected dashboard clients. It is
// the only concurrent component in the server; everything else responds
// synchronously to requests.
type Hub struct {
	logger     *zap.Logger
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan *Event
	mu         sync.RWMutex

	upgrader websocket.Upgrader
}

// NewHub creates a hub. Call Run before handling connections.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan *Event, 256),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run drives the hub loop until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.logger.Debug("dashboard client connected", zap.Int("clients", len(h.clients)))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("failed to marshal feed event", zap.Error(err))
				continue
			}

			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow consumer; drop it rather than block the feed.
					go func(c *client) { h.unregister <- c }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// PublishReservationCreated implements service.EventPublisher.
func (h *Hub) PublishReservationCreated(res *database.Reservation, guest *database.Guest) {
	ev := &Event{
		Type:          EventReservationCreated,
		ReservationID: res.ID.String(),
		GuestName:     guest.FullName,
		RoomTypeID:    res.RoomTypeID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
		TotalAmount:   res.TotalAmount,
		Timestamp:     time.Now().UnixMilli(),
	}

	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("feed buffer full, dropping event", zap.String("reservationId", ev.ReservationID))
	}
}

// ClientCount returns the number of connected dashboard clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket handles GET /api/ws/reservations.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}
	h.register <- c

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages; the feed is one-way. It exists to
// notice closes and keep the pong deadline fresh.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
