package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"meetingroom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func day(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func newBooking(roomID string, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		RoomID:    roomID,
		RoomName:  "Room " + roomID,
		User:      domain.User{Name: "Alice", Email: "alice@example.com"},
		StartTime: start,
		EndTime:   end,
	}
}

func TestMemoryBookingStore_CreateAssignsIdentity(t *testing.T) {
	clock := fixedClock{now: day(7, 0)}
	store := NewMemoryBookingStore(clock)

	b := newBooking("room-a", day(9, 0), day(10, 0))
	require.NoError(t, store.Create(context.Background(), b))

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, clock.now, b.CreatedAt)
}

func TestMemoryBookingStore_CreateRejectsOverlap(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	first := newBooking("room-a", day(9, 0), day(10, 0))
	require.NoError(t, store.Create(ctx, first))

	err := store.Create(ctx, newBooking("room-a", day(9, 30), day(10, 30)))
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.Conflicting.ID)

	// same interval in another room is fine
	require.NoError(t, store.Create(ctx, newBooking("room-b", day(9, 30), day(10, 30))))

	// back to back in the same room is fine
	require.NoError(t, store.Create(ctx, newBooking("room-a", day(10, 0), day(11, 0))))
}

func TestMemoryBookingStore_ListSortedByStart(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newBooking("room-a", day(14, 0), day(15, 0))))
	require.NoError(t, store.Create(ctx, newBooking("room-a", day(9, 0), day(10, 0))))
	require.NoError(t, store.Create(ctx, newBooking("room-b", day(11, 0), day(12, 0))))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].StartTime.Before(all[1].StartTime))
	assert.True(t, all[1].StartTime.Before(all[2].StartTime))

	byRoom, err := store.ListByRoom(ctx, "room-a")
	require.NoError(t, err)
	require.Len(t, byRoom, 2)
	assert.Equal(t, day(9, 0), byRoom[0].StartTime)
	assert.Equal(t, day(14, 0), byRoom[1].StartTime)
}

func TestMemoryBookingStore_ListIsDefensiveCopy(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newBooking("room-a", day(9, 0), day(10, 0))))

	all, err := store.List(ctx)
	require.NoError(t, err)
	all[0].RoomID = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "room-a", again[0].RoomID)
}

func TestMemoryBookingStore_ListByDateRangeInclusive(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newBooking("room-a", day(9, 0), day(10, 0))))
	require.NoError(t, store.Create(ctx, newBooking("room-a", day(12, 0), day(13, 0))))
	require.NoError(t, store.Create(ctx, newBooking("room-a", day(17, 0), day(17, 30))))

	// bounds land exactly on the first and second start times
	got, err := store.ListByDateRange(ctx, day(9, 0), day(12, 0))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, day(9, 0), got[0].StartTime)
	assert.Equal(t, day(12, 0), got[1].StartTime)
}

func TestMemoryBookingStore_DeleteTwice(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	b := newBooking("room-a", day(9, 0), day(10, 0))
	require.NoError(t, store.Create(ctx, b))

	ok, err := store.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryBookingStore_ConcurrentAdmissionsSameSlot(t *testing.T) {
	store := NewMemoryBookingStore(nil)
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Create(ctx, newBooking("room-a", day(9, 0), day(10, 0)))
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
			continue
		}
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, admitted)
}

func TestMemoryRoomStore(t *testing.T) {
	store := NewMemoryRoomStore()
	ctx := context.Background()

	r := &domain.Room{Name: "Board Room", Capacity: 8, Floor: 1}
	require.NoError(t, store.Create(ctx, r))
	require.NotEmpty(t, r.ID)

	got, err := store.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Board Room", got.Name)

	missing, err := store.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	rooms, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	rooms[0].Name = "mutated"
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Board Room", again[0].Name)
}

func TestMemoryRoomStore_ListSortedByName(t *testing.T) {
	store := NewMemoryRoomStore()
	ctx := context.Background()

	for _, name := range []string{"Room C", "Room A", "Room B"} {
		require.NoError(t, store.Create(ctx, &domain.Room{Name: name, Capacity: 4, Floor: 1}))
	}

	rooms, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Room A", rooms[0].Name)
	assert.Equal(t, "Room B", rooms[1].Name)
	assert.Equal(t, "Room C", rooms[2].Name)
}
