package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetingroom/internal/modules/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"r1","name":"Board Room","capacity":8,"floor":1}]}`))
	}))
	defer srv.Close()

	rooms, err := New(srv.URL).Rooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Board Room", rooms[0].Name)
}

func TestClient_BookingFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "room-1", r.URL.Query().Get("roomId"))
		assert.Equal(t, "2026-09-15", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	bookings, err := New(srv.URL).Bookings(context.Background(), "room-1", "2026-09-15")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestClient_SurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"booking conflicts with existing booking"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateBooking(context.Background(), booking.CreateBookingRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "conflicts")
}
