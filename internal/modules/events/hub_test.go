package events

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"meetingroom/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	router := gin.New()
	api := router.Group("/api")
	NewHandler(hub).RegisterRoutes(api)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	// wait for the server side to register the subscriber
	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 },
		time.Second, 10*time.Millisecond)

	return hub, conn
}

func TestHub_BroadcastsBookingEvents(t *testing.T) {
	hub, conn := dialTestHub(t)

	created := domain.Booking{
		ID:     "b1",
		RoomID: "room-1",
		User:   domain.User{Name: "Alice", Email: "alice@example.com"},
	}
	hub.BookingCreated(created)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, TypeBookingCreated, got.Type)
	require.NotNil(t, got.Booking)
	assert.Equal(t, "b1", got.Booking.ID)

	hub.BookingDeleted("b1")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, TypeBookingDeleted, got.Type)
	assert.Equal(t, "b1", got.BookingID)
}

func TestHub_ConcurrentBroadcastsSerializeWrites(t *testing.T) {
	hub, conn := dialTestHub(t)

	const broadcasters = 16
	var wg sync.WaitGroup
	wg.Add(broadcasters)
	for i := 0; i < broadcasters; i++ {
		go func(n int) {
			defer wg.Done()
			hub.BookingCreated(domain.Booking{
				ID:     fmt.Sprintf("b%d", n),
				RoomID: "room-1",
			})
		}(i)
	}

	seen := make(map[string]bool)
	for i := 0; i < broadcasters; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, TypeBookingCreated, got.Type)
		require.NotNil(t, got.Booking)
		seen[got.Booking.ID] = true
	}

	wg.Wait()
	assert.Len(t, seen, broadcasters)
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub, conn := dialTestHub(t)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 0 },
		time.Second, 10*time.Millisecond)

	// broadcasting with no subscribers must not panic
	hub.BookingDeleted("gone")
	assert.Equal(t, 0, hub.SubscriberCount())
}
