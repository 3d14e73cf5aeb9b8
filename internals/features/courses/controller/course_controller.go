package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/model"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// =========================
// Create course
// =========================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Unique course code
	var existing model.CourseModel
	err := ctrl.DB.Where("code = ?", body.Code).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "A course with the same code already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	course, err := body.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid faculty id")
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

// =========================
// Get all courses
// =========================
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctrl.DB.Order("created_at desc").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "OK", courses)
}

// =========================
// Get single course
// =========================
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "OK", course)
}

// =========================
// Update course
// =========================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	if err := body.ApplyToModel(&course); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid faculty id")
	}

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated", course)
}

// =========================
// Delete course
// =========================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	if err := ctrl.DB.Delete(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.Success(c, "Course Deleted Successfully", nil)
}
