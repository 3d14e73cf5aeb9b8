package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/repository"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/service"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type RoomBookingController struct {
	DB           *gorm.DB
	Availability *service.AvailabilityService
	Validate     *validator.Validate
}

func NewRoomBookingController(db *gorm.DB) *RoomBookingController {
	repo := repository.NewRoomRepository(db)
	return &RoomBookingController{
		DB:           db,
		Availability: service.NewAvailabilityService(repo, repo, service.RealClock{}),
		Validate:     validator.New(),
	}
}

// =========================
// Book a room
// =========================
func (ctrl *RoomBookingController) BookRoom(c *fiber.Ctx) error {
	var body dto.BookRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	roomID, date, start, end, err := body.Parse()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.Availability.BookRoom(roomID, date, start, end); err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Room not found")
		case errors.Is(err, service.ErrRoomAlreadyBooked):
			return helper.Error(c, fiber.StatusBadRequest, "Room is already booked")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to book room")
		}
	}

	return helper.Success(c, "Room booked successfully", nil)
}

// =========================
// List available rooms
// =========================
func (ctrl *RoomBookingController) GetAvailableRooms(c *fiber.Ctx) error {
	var rooms []model.RoomModel
	if err := ctrl.DB.Where("availability = ?", true).Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	}
	return helper.Success(c, "OK", rooms)
}
