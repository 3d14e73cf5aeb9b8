package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/constants"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/controller"
	authMiddleware "github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares/auth"
)

// CourseRoutes mounts /api/courses. Mutations are admin only.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := api.Group("/courses")

	courses.Get("/", ctrl.GetCourses)
	courses.Get("/:id", ctrl.GetCourse)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("course management"), constants.AdminOnly...)
	courses.Post("/", adminOnly, ctrl.CreateCourse)
	courses.Patch("/:id", adminOnly, ctrl.UpdateCourse)
	courses.Delete("/:id", adminOnly, ctrl.DeleteCourse)
}
