package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/constants"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/controller"
	authMiddleware "github.com/JaninduMunasinghe/university-timetable-management/internals/middlewares/auth"
)

// RoomRoutes mounts /api/room. Booking is open to any authenticated user;
// room CRUD mutations are admin only.
func RoomRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRoomController(db)
	bookingCtrl := controller.NewRoomBookingController(db)

	room := api.Group("/room")

	// Booking endpoints must register before /:id
	room.Post("/book", bookingCtrl.BookRoom)
	room.Get("/book", bookingCtrl.GetAvailableRooms)

	room.Get("/", ctrl.GetRooms)
	room.Get("/:id", ctrl.GetRoom)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("room management"), constants.AdminOnly...)
	room.Post("/", adminOnly, ctrl.CreateRoom)
	room.Patch("/:id", adminOnly, ctrl.UpdateRoom)
	room.Delete("/:id", adminOnly, ctrl.DeleteRoom)
}
