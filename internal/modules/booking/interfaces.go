package booking

import (
	"context"
	"time"

	"meetingroom/internal/domain"
)

// BookingStore is the mutable collection of admitted bookings. Create must
// perform its own conflict check atomically with the append; the service's
// earlier check is advisory only.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RoomStore interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// EventSink receives booking lifecycle notifications.
type EventSink interface {
	BookingCreated(b domain.Booking)
	BookingDeleted(id string)
}
