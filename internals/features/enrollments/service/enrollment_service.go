package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/model"
)

var (
	ErrInvalidKey         = errors.New("Invalid enrollment key")
	ErrCourseNotFound     = errors.New("Course not found")
	ErrStudentNotFound    = errors.New("Student not found")
	ErrAlreadyEnrolled    = errors.New("Student is already enrolled in this course")
	ErrEnrollmentNotFound = errors.New("Enrollment record not found")
)

// EnrollmentStore is the persistence surface the enrollment rules need.
type EnrollmentStore interface {
	CourseExists(id uuid.UUID) (bool, error)
	StudentExists(id uuid.UUID) (bool, error)
	EnrollmentExists(studentID, courseID uuid.UUID) (bool, error)
	CreateEnrollment(e *model.EnrollmentModel) error
	DeleteEnrollment(studentID, courseID uuid.UUID) (bool, error)
}

// EnrollmentService enforces the enrollment rules: shared key, existing
// course and student, no duplicate (student, course) pair.
type EnrollmentService struct {
	Store EnrollmentStore
	Key   string
}

func NewEnrollmentService(store EnrollmentStore, key string) *EnrollmentService {
	return &EnrollmentService{Store: store, Key: key}
}

func (s *EnrollmentService) Enroll(studentID, courseID uuid.UUID, key, email string) (*model.EnrollmentModel, error) {
	if key != s.Key {
		return nil, ErrInvalidKey
	}

	ok, err := s.Store.CourseExists(courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCourseNotFound
	}

	ok, err = s.Store.StudentExists(studentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStudentNotFound
	}

	ok, err = s.Store.EnrollmentExists(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &model.EnrollmentModel{
		StudentID: studentID,
		CourseID:  courseID,
		Email:     email,
	}
	if err := s.Store.CreateEnrollment(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Unenroll(studentID, courseID uuid.UUID) error {
	deleted, err := s.Store.DeleteEnrollment(studentID, courseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEnrollmentNotFound
	}
	return nil
}
