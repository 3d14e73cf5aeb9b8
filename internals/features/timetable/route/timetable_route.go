package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/constants"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/controller"
	authMiddleware "github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares/auth"
)

// TimetableRoutes mounts /api/timetable. Reads for any authenticated user,
// mutations admin only.
func TimetableRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTimetableController(db)

	timetable := api.Group("/timetable")

	timetable.Get("/", ctrl.GetTimetables)
	timetable.Get("/:id", ctrl.GetTimetable)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("timetable management"), constants.AdminOnly...)
	timetable.Post("/", adminOnly, ctrl.CreateTimetable)
	timetable.Patch("/:id", adminOnly, ctrl.UpdateTimetable)
	timetable.Delete("/:id", adminOnly, ctrl.DeleteTimetable)
}
