package catalog

import (
	"context"

	"meetingroom/internal/domain"
)

// RoomStore holds room records. Read-mostly; rooms are never updated or
// deleted once created.
type RoomStore interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}
