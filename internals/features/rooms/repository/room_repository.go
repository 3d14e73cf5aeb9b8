package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/service"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

// RoomRepository backs the availability service with GORM.
type RoomRepository struct {
	DB *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{DB: db}
}

func (r *RoomRepository) FindRoomByID(id uuid.UUID) (*model.RoomModel, error) {
	var room model.RoomModel
	if err := r.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) SaveRoom(room *model.RoomModel) error {
	return r.DB.Save(room).Error
}

func (r *RoomRepository) FindFinishedBookings(roomID uuid.UUID, date time.Time, endBefore dbtime.Tod) ([]model.RoomBookingModel, error) {
	var bookings []model.RoomBookingModel
	day := date.Format("2006-01-02")
	err := r.DB.
		Where("room_id = ? AND date = ? AND end_time <= ?", roomID, day, endBefore).
		Find(&bookings).Error
	return bookings, err
}

func (r *RoomRepository) CreateBooking(b *model.RoomBookingModel) error {
	return r.DB.Create(b).Error
}
