package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/constants"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/controller"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares"
	authMiddleware "github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares/auth"
)

// UserRoutes mounts /api/users (auth endpoints public, the rest guarded).
func UserRoutes(api fiber.Router, db *gorm.DB, cfg configs.AppConfig) {
	ctrl := controller.NewUserController(db, cfg)

	users := api.Group("/users")

	// Public
	users.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	users.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	users.Get("/logout", ctrl.Logout)
	users.Get("/loggedin", ctrl.LoginStatus)

	// Authenticated
	secured := users.Group("", authMiddleware.AuthMiddleware(db, cfg.JWTSecret))
	secured.Get("/getuser", ctrl.GetUser)
	secured.Patch("/updateuser", ctrl.UpdateUser)
	secured.Patch("/changepassword", ctrl.ChangePassword)
	secured.Get("/getusers",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user list"), constants.AdminOnly...),
		ctrl.GetUsers,
	)
}
