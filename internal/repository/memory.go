package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"meetingroom/internal/domain"

	"github.com/google/uuid"
)

// MemoryRoomStore keeps rooms in process memory. Rooms are never updated or
// deleted, so reads only need a copy to stay safe.
type MemoryRoomStore struct {
	mu    sync.RWMutex
	rooms []domain.Room
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{}
}

func (s *MemoryRoomStore) Create(ctx context.Context, r *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = uuid.NewString()
	s.rooms = append(s.rooms, *r)
	return nil
}

func (s *MemoryRoomStore) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			r := s.rooms[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *MemoryRoomStore) List(ctx context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MemoryBookingStore keeps admitted bookings in insertion order. The conflict
// check and the append happen inside one critical section, so two admissions
// for the same slot can never both pass against a stale view.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	clock    domain.Clock
}

func NewMemoryBookingStore(clock domain.Clock) *MemoryBookingStore {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &MemoryBookingStore{clock: clock}
}

// Create admits the booking after re-checking for overlap against the current
// contents. On success it assigns a fresh id and stamps CreatedAt.
func (s *MemoryBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := domain.Candidate{RoomID: b.RoomID, StartTime: b.StartTime, EndTime: b.EndTime}
	if hit := domain.FindConflict(candidate, s.bookings); hit != nil {
		return &domain.ConflictError{Conflicting: *hit}
	}

	b.ID = uuid.NewString()
	b.CreatedAt = s.clock.Now()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryBookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	sortByStart(out)
	return out, nil
}

func (s *MemoryBookingStore) ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

// ListByDateRange returns bookings whose start time falls within [from, to],
// both bounds inclusive.
func (s *MemoryBookingStore) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if !b.StartTime.Before(from) && !b.StartTime.After(to) {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *MemoryBookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

// Delete removes the booking with the given id and reports whether anything
// was removed. Ids are never reused, so a later Create cannot resurrect it.
func (s *MemoryBookingStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func sortByStart(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
}
