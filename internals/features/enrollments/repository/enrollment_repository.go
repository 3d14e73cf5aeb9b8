package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/model"
	userModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
)

// EnrollmentRepository backs the enrollment service with GORM.
type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) CourseExists(id uuid.UUID) (bool, error) {
	var course courseModel.CourseModel
	return r.exists(r.DB.Select("id").First(&course, "id = ?", id).Error)
}

func (r *EnrollmentRepository) StudentExists(id uuid.UUID) (bool, error) {
	var user userModel.UserModel
	return r.exists(r.DB.Select("id").First(&user, "id = ?", id).Error)
}

func (r *EnrollmentRepository) EnrollmentExists(studentID, courseID uuid.UUID) (bool, error) {
	var enrollment model.EnrollmentModel
	return r.exists(r.DB.Select("id").
		First(&enrollment, "student_id = ? AND course_id = ?", studentID, courseID).Error)
}

func (r *EnrollmentRepository) CreateEnrollment(e *model.EnrollmentModel) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) DeleteEnrollment(studentID, courseID uuid.UUID) (bool, error) {
	res := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.EnrollmentModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *EnrollmentRepository) exists(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
