package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomModel maps the rooms table. Location is the uniqueness key.
// Availability is stored and mutated by the reconciler, not computed on read.
type RoomModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Type         string    `gorm:"size:50;not null" json:"type"`
	Location     string    `gorm:"size:100;unique;not null" json:"location"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	Availability bool      `gorm:"not null;default:true" json:"availability"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
