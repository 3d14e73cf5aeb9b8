package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel maps the enrollments table. (student_id, course_id) is
// the uniqueness key.
type EnrollmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_student_course,unique" json:"studentId"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_student_course,unique" json:"courseId"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolledAt"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
