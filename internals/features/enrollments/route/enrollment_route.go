package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/controller"
)

// EnrollmentRoutes mounts /api/enrollment for authenticated users.
func EnrollmentRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig) {
	ctrl := controller.NewEnrollmentController(db, cfg)

	enrollment := api.Group("/enrollment")
	enrollment.Post("/", ctrl.EnrollCourse)
	enrollment.Delete("/", ctrl.UnenrollCourse)
}
