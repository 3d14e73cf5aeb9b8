package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

// DayOfWeek is one of the seven enumerated day names.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// TimetableModel maps the timetables table. A session belongs to a course,
// a faculty member and a room, recurring weekly on DayOfWeek.
type TimetableModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	CourseID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"courseId"`
	DayOfWeek DayOfWeek  `gorm:"type:varchar(10);not null" json:"dayOfWeek"`
	StartTime dbtime.Tod `gorm:"type:time;not null" json:"startTime"`
	EndTime   dbtime.Tod `gorm:"type:time;not null" json:"endTime"`
	FacultyID uuid.UUID  `gorm:"type:uuid;not null;index" json:"facultyId"`
	RoomID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"locationId"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TimetableModel) TableName() string {
	return "timetables"
}
