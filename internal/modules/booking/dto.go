package booking

import "time"

type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateBookingRequest is the unvalidated input. Timestamps arrive as RFC 3339
// strings so the validation engine can report unparseable values as field
// errors instead of failing at bind time.
type CreateBookingRequest struct {
	RoomID    string      `json:"roomId"`
	User      UserPayload `json:"user"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
