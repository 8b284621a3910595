package domain

import (
	"fmt"
	"time"
)

// Candidate is the interval a proposed booking would occupy.
type Candidate struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A booking ending exactly when another starts
// does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict scans existing bookings in their given order and returns a copy
// of the first one in the candidate's room whose interval overlaps, or nil when
// the slot is free.
func FindConflict(candidate Candidate, existing []Booking) *Booking {
	for i := range existing {
		if existing[i].RoomID != candidate.RoomID {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, existing[i].StartTime, existing[i].EndTime) {
			b := existing[i]
			return &b
		}
	}
	return nil
}

// ConflictError reports that a proposed interval collides with an already
// admitted booking in the same room.
type ConflictError struct {
	Conflicting Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"booking conflicts with existing booking %s (%s at %s)",
		e.Conflicting.ID,
		e.Conflicting.User.Name,
		e.Conflicting.StartTime.Format(time.RFC3339),
	)
}
