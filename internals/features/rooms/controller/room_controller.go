package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validate: validator.New()}
}

// =========================
// Create room
// =========================
func (ctrl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var body dto.CreateRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Unique location
	var existing model.RoomModel
	err := ctrl.DB.Where("location = ?", body.Location).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Room already created at this location")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	room := body.ToModel()
	if err := ctrl.DB.Create(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create room")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room created", room)
}

// =========================
// Get all rooms
// =========================
func (ctrl *RoomController) GetRooms(c *fiber.Ctx) error {
	var rooms []model.RoomModel
	if err := ctrl.DB.Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Rooms not found")
	}
	return helper.Success(c, "OK", rooms)
}

// =========================
// Get single room
// =========================
func (ctrl *RoomController) GetRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	var room model.RoomModel
	if err := ctrl.DB.First(&room, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Room not found")
	}
	return helper.Success(c, "OK", room)
}

// =========================
// Update room
// =========================
func (ctrl *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateRoomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var room model.RoomModel
	if err := ctrl.DB.First(&room, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Room not found")
	}

	body.ApplyToModel(&room)

	if err := ctrl.DB.Save(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update room")
	}
	return helper.Success(c, "Room updated", room)
}

// =========================
// Delete room
// =========================
func (ctrl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	var room model.RoomModel
	if err := ctrl.DB.First(&room, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Room not found")
	}

	if err := ctrl.DB.Delete(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete room")
	}
	return helper.Success(c, "Room removed", nil)
}
