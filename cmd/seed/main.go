package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"meetingroom/internal/apiclient"
	"meetingroom/internal/modules/booking"
	"meetingroom/internal/modules/catalog"
)

// Seeds the running API with sample rooms and a couple of bookings for
// tomorrow morning. Going through the HTTP surface keeps the seeder honest:
// everything it inserts passed the same validation as any other client.
func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("BOOKING_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := apiclient.New(baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		slog.Error("api is not reachable", "url", baseURL, "error", err)
		os.Exit(1)
	}

	rooms := []catalog.CreateRoomRequest{
		{Name: "Meeting Room A - Floor 1", Capacity: 8, Floor: 1},
		{Name: "Meeting Room B - Floor 1", Capacity: 12, Floor: 1},
		{Name: "Meeting Room C - Floor 2", Capacity: 6, Floor: 2},
		{Name: "Meeting Room D - Floor 2", Capacity: 15, Floor: 2},
		{Name: "Meeting Room E - Floor 3", Capacity: 20, Floor: 3},
	}

	roomIDs := make([]string, 0, len(rooms))
	for _, req := range rooms {
		room, err := client.CreateRoom(ctx, req)
		if err != nil {
			slog.Error("failed to create room", "name", req.Name, "error", err)
			os.Exit(1)
		}
		slog.Info("created room", "id", room.ID, "name", room.Name)
		roomIDs = append(roomIDs, room.ID)
	}

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	at := func(hour int) string {
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, 0, 0, 0, time.UTC).
			Format(time.RFC3339)
	}

	seedBookings := []booking.CreateBookingRequest{
		{
			RoomID:    roomIDs[0],
			User:      booking.UserPayload{Name: "Nguyen Van A", Email: "nguyenvana@example.com"},
			StartTime: at(9),
			EndTime:   at(10),
		},
		{
			RoomID:    roomIDs[1],
			User:      booking.UserPayload{Name: "Tran Thi B", Email: "tranthib@example.com"},
			StartTime: at(11),
			EndTime:   at(12),
		},
	}

	for _, req := range seedBookings {
		b, err := client.CreateBooking(ctx, req)
		if err != nil {
			slog.Error("failed to create booking", "room", req.RoomID, "error", err)
			os.Exit(1)
		}
		slog.Info("created booking", "id", b.ID, "room", b.RoomName, "start", b.StartTime)
	}
}
