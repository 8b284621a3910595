package domain

import "time"

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking is an admitted reservation. RoomName is copied from the room at
// creation time and is not re-synced if the room is later renamed.
type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	RoomName  string    `json:"roomName"`
	User      User      `json:"user"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}
