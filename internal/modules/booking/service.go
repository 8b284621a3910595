package booking

import (
	"context"
	"time"

	"meetingroom/internal/domain"
)

// Service orchestrates booking admission: field validation, room resolution,
// an advisory conflict check for friendly error reporting, then store
// admission. The store repeats the conflict check under its own lock, and both
// paths go through domain.FindConflict so they can never disagree.
type Service struct {
	bookings  BookingStore
	rooms     RoomStore
	events    EventSink
	validator *Validator
	hours     Hours
	slot      time.Duration
}

func NewService(bookings BookingStore, rooms RoomStore, events EventSink, validator *Validator, hours Hours, slot time.Duration) *Service {
	return &Service{
		bookings:  bookings,
		rooms:     rooms,
		events:    events,
		validator: validator,
		hours:     hours,
		slot:      slot,
	}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if result := s.validator.Validate(req); !result.IsValid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	// both parsed successfully during validation
	start, _ := time.Parse(time.RFC3339, req.StartTime)
	end, _ := time.Parse(time.RFC3339, req.EndTime)

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	candidate := domain.Candidate{RoomID: req.RoomID, StartTime: start, EndTime: end}
	if hit := domain.FindConflict(candidate, existing); hit != nil {
		return nil, &domain.ConflictError{Conflicting: *hit}
	}

	b := &domain.Booking{
		RoomID:    room.ID,
		RoomName:  room.Name,
		User:      domain.User{Name: req.User.Name, Email: req.User.Email},
		StartTime: start,
		EndTime:   end,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(*b)
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) ListBookingsByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	return s.bookings.ListByRoom(ctx, roomID)
}

// ListBookingsByDateRange returns bookings starting within [from, to], both
// bounds inclusive.
func (s *Service) ListBookingsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	return s.bookings.ListByDateRange(ctx, from, to)
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// DeleteBooking reports whether a booking was removed. Deleting an unknown id
// is a no-op, not an error.
func (s *Service) DeleteBooking(ctx context.Context, id string) (bool, error) {
	ok, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if ok && s.events != nil {
		s.events.BookingDeleted(id)
	}
	return ok, nil
}

// AvailableSlots returns the free slots for a room on the given day: the
// business-hours grid minus every slot overlapping an existing booking.
func (s *Service) AvailableSlots(ctx context.Context, roomID string, day time.Time) ([]TimeSlot, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	booked, err := s.bookings.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), s.hours.Open, 0, 0, 0, day.Location())
	close := time.Date(day.Year(), day.Month(), day.Day(), s.hours.Close, 0, 0, 0, day.Location())

	slots := make([]TimeSlot, 0)
	for cur := open; cur.Before(close); cur = cur.Add(s.slot) {
		slotEnd := cur.Add(s.slot)
		if slotEnd.After(close) {
			break
		}
		free := true
		for _, b := range booked {
			if domain.Overlaps(cur, slotEnd, b.StartTime, b.EndTime) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, TimeSlot{Start: cur, End: slotEnd})
		}
	}
	return slots, nil
}
