package repository

import (
	"time"

	"meetingroom/internal/domain"

	"gorm.io/gorm"
)

type roomModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Capacity int    `gorm:"column:capacity"`
	Floor    int    `gorm:"column:floor"`
}

func (roomModel) TableName() string { return "rooms" }

type bookingModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	RoomID    string    `gorm:"column:room_id;index"`
	RoomName  string    `gorm:"column:room_name"`
	UserName  string    `gorm:"column:user_name"`
	UserEmail string    `gorm:"column:user_email"`
	StartTime time.Time `gorm:"column:start_time;index"`
	EndTime   time.Time `gorm:"column:end_time"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainRoom(m roomModel) domain.Room {
	return domain.Room{ID: m.ID, Name: m.Name, Capacity: m.Capacity, Floor: m.Floor}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{ID: r.ID, Name: r.Name, Capacity: r.Capacity, Floor: r.Floor}
}

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:        m.ID,
		RoomID:    m.RoomID,
		RoomName:  m.RoomName,
		User:      domain.User{Name: m.UserName, Email: m.UserEmail},
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		CreatedAt: m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		UserName:  b.User.Name,
		UserEmail: b.User.Email,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.CreatedAt,
	}
}

// AutoMigrate creates or updates the schema for the persistent stores.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomModel{}, &bookingModel{})
}
