package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel maps the courses table. Code is the uniqueness key.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Code        string    `gorm:"size:20;unique;not null" json:"code"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Credits     string    `gorm:"size:10;not null" json:"credits"`
	FacultyID   uuid.UUID `gorm:"type:uuid;not null" json:"faculty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
