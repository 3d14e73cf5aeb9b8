package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/repository"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/service"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type EnrollmentController struct {
	Service  *service.EnrollmentService
	Validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, cfg configs.AppConfig) *EnrollmentController {
	return &EnrollmentController{
		Service:  service.NewEnrollmentService(repository.NewEnrollmentRepository(db), cfg.EnrollmentKey),
		Validate: validator.New(),
	}
}

// =========================
// Enroll
// =========================
func (ctrl *EnrollmentController) EnrollCourse(c *fiber.Ctx) error {
	var body dto.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, _ := uuid.Parse(body.StudentID)
	courseID, _ := uuid.Parse(body.CourseID)

	enrollment, err := ctrl.Service.Enroll(studentID, courseID, body.EnrollmentKey, body.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidKey), errors.Is(err, service.ErrAlreadyEnrolled):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrStudentNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to enroll")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrolled successfully", enrollment)
}

// =========================
// Unenroll
// =========================
func (ctrl *EnrollmentController) UnenrollCourse(c *fiber.Ctx) error {
	var body dto.UnenrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, _ := uuid.Parse(body.StudentID)
	courseID, _ := uuid.Parse(body.CourseID)

	if err := ctrl.Service.Unenroll(studentID, courseID); err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unenroll")
	}

	return helper.Success(c, "Student unenrolled from the course successfully", nil)
}
