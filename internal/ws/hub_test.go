package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	feed := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(feed.Close)

	url := "ws" + strings.TrimPrefix(feed.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_BroadcastsReservationEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialTestHub(t, hub)

	// Wait for the registration to land before publishing.
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	res := &database.Reservation{
		ID:          uuid.New(),
		RoomTypeID:  "deluxe",
		CheckIn:     time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2030, time.June, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount: 1120,
	}
	guest := &database.Guest{ID: uuid.New(), FullName: "Nimal Perera"}

	hub.PublishReservationCreated(res, guest)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, EventReservationCreated, ev.Type)
	assert.Equal(t, res.ID.String(), ev.ReservationID)
	assert.Equal(t, "Nimal Perera", ev.GuestName)
	assert.Equal(t, 1120.0, ev.TotalAmount)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	done := make(chan struct{})
	go func() {
		hub.PublishReservationCreated(&database.Reservation{ID: uuid.New()}, &database.Guest{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no connected clients")
	}
}
