package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"meetingroom/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository is the database-backed booking store. Admissions are
// serialized behind a process-local mutex so the overlap check and the insert
// form one atomic unit, matching the in-memory store's guarantee.
type BookingRepository struct {
	db    *gorm.DB
	mu    sync.Mutex
	clock domain.Clock
}

func NewBookingRepository(db *gorm.DB, clock domain.Clock) *BookingRepository {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &BookingRepository{db: db, clock: clock}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Admission order is created_at then id, which keeps conflict reporting
	// deterministic across restarts.
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", b.RoomID).
		Order("created_at ASC, id ASC").
		Find(&models)
	if tx.Error != nil {
		return tx.Error
	}

	existing := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		existing = append(existing, toDomainBooking(m))
	}

	candidate := domain.Candidate{RoomID: b.RoomID, StartTime: b.StartTime, EndTime: b.EndTime}
	if hit := domain.FindConflict(candidate, existing); hit != nil {
		return &domain.ConflictError{Conflicting: *hit}
	}

	b.ID = uuid.NewString()
	b.CreatedAt = r.clock.Now()

	m := toBookingModel(b)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.find(ctx, r.db)
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	return r.find(ctx, r.db.Where("room_id = ?", roomID))
}

func (r *BookingRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	return r.find(ctx, r.db.Where("start_time >= ? AND start_time <= ?", from, to))
}

func (r *BookingRepository) find(ctx context.Context, tx *gorm.DB) ([]domain.Booking, error) {
	var models []bookingModel
	if err := tx.WithContext(ctx).Order("start_time ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}

	b := toDomainBooking(m)
	return &b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
