package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

// RoomBookingModel maps the room_bookings table.
// Rows are never mutated; a booking is "expired" once EndTime has elapsed
// relative to wall-clock time (derived, not stored).
type RoomBookingModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	RoomID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"roomId"`
	Date      time.Time  `gorm:"type:date;not null" json:"date"`
	StartTime dbtime.Tod `gorm:"type:time;not null" json:"startTime"`
	EndTime   dbtime.Tod `gorm:"type:time;not null" json:"endTime"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoomBookingModel) TableName() string {
	return "room_bookings"
}
