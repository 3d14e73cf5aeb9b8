package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/model"
)

type fakeEnrollmentStore struct {
	courses     map[uuid.UUID]bool
	students    map[uuid.UUID]bool
	enrollments map[[2]uuid.UUID]bool
	created     []model.EnrollmentModel
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		courses:     map[uuid.UUID]bool{},
		students:    map[uuid.UUID]bool{},
		enrollments: map[[2]uuid.UUID]bool{},
	}
}

func (f *fakeEnrollmentStore) CourseExists(id uuid.UUID) (bool, error)  { return f.courses[id], nil }
func (f *fakeEnrollmentStore) StudentExists(id uuid.UUID) (bool, error) { return f.students[id], nil }

func (f *fakeEnrollmentStore) EnrollmentExists(studentID, courseID uuid.UUID) (bool, error) {
	return f.enrollments[[2]uuid.UUID{studentID, courseID}], nil
}

func (f *fakeEnrollmentStore) CreateEnrollment(e *model.EnrollmentModel) error {
	e.ID = uuid.New()
	f.enrollments[[2]uuid.UUID{e.StudentID, e.CourseID}] = true
	f.created = append(f.created, *e)
	return nil
}

func (f *fakeEnrollmentStore) DeleteEnrollment(studentID, courseID uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{studentID, courseID}
	if !f.enrollments[key] {
		return false, nil
	}
	delete(f.enrollments, key)
	return true, nil
}

const enrollmentKey = "open-sesame"

func TestEnroll(t *testing.T) {
	studentID := uuid.New()
	courseID := uuid.New()

	setup := func() (*fakeEnrollmentStore, *EnrollmentService) {
		store := newFakeEnrollmentStore()
		store.courses[courseID] = true
		store.students[studentID] = true
		return store, NewEnrollmentService(store, enrollmentKey)
	}

	t.Run("wrong key rejects before anything else", func(t *testing.T) {
		store, svc := setup()
		_, err := svc.Enroll(studentID, courseID, "wrong-key", "s@uni.edu")
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("want ErrInvalidKey, got %v", err)
		}
		if len(store.created) != 0 {
			t.Error("no enrollment record may be created on invalid key")
		}
	})

	t.Run("missing course", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.Enroll(studentID, uuid.New(), enrollmentKey, "s@uni.edu")
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("want ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("missing student", func(t *testing.T) {
		_, svc := setup()
		_, err := svc.Enroll(uuid.New(), courseID, enrollmentKey, "s@uni.edu")
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("want ErrStudentNotFound, got %v", err)
		}
	})

	t.Run("duplicate enrollment", func(t *testing.T) {
		store, svc := setup()
		store.enrollments[[2]uuid.UUID{studentID, courseID}] = true
		_, err := svc.Enroll(studentID, courseID, enrollmentKey, "s@uni.edu")
		if !errors.Is(err, ErrAlreadyEnrolled) {
			t.Fatalf("want ErrAlreadyEnrolled, got %v", err)
		}
	})

	t.Run("successful enrollment", func(t *testing.T) {
		store, svc := setup()
		enrollment, err := svc.Enroll(studentID, courseID, enrollmentKey, "s@uni.edu")
		if err != nil {
			t.Fatal(err)
		}
		if enrollment.StudentID != studentID || enrollment.CourseID != courseID {
			t.Error("enrollment record carries wrong ids")
		}
		if len(store.created) != 1 {
			t.Fatalf("expected 1 created record, got %d", len(store.created))
		}
	})
}

func TestUnenroll(t *testing.T) {
	studentID := uuid.New()
	courseID := uuid.New()

	t.Run("absent record", func(t *testing.T) {
		svc := NewEnrollmentService(newFakeEnrollmentStore(), enrollmentKey)
		err := svc.Unenroll(studentID, courseID)
		if !errors.Is(err, ErrEnrollmentNotFound) {
			t.Fatalf("want ErrEnrollmentNotFound, got %v", err)
		}
	})

	t.Run("existing record is removed", func(t *testing.T) {
		store := newFakeEnrollmentStore()
		store.enrollments[[2]uuid.UUID{studentID, courseID}] = true
		svc := NewEnrollmentService(store, enrollmentKey)
		if err := svc.Unenroll(studentID, courseID); err != nil {
			t.Fatal(err)
		}
		if store.enrollments[[2]uuid.UUID{studentID, courseID}] {
			t.Error("enrollment should be gone")
		}
	})
}
