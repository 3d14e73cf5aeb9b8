package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
	courseRoute "github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/route"
	enrollmentRoute "github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/route"
	roomRoute "github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/route"
	timetableRoute "github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/route"
	userRoute "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/route"
	authMiddleware "github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api. Auth endpoints stay public;
// the rest sits behind the JWT middleware with per-route role guards.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db, cfg)

	secured := api.Group("", authMiddleware.AuthMiddleware(db, cfg.JWTSecret))

	log.Println("[INFO] Setting up CourseRoutes...")
	courseRoute.CourseRoutes(secured, db)

	log.Println("[INFO] Setting up RoomRoutes...")
	roomRoute.RoomRoutes(secured, db)

	log.Println("[INFO] Setting up TimetableRoutes...")
	timetableRoute.TimetableRoutes(secured, db)

	log.Println("[INFO] Setting up EnrollmentRoutes...")
	enrollmentRoute.EnrollmentRoutes(secured, db, cfg)
}
