package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

type CreateRoomRequest struct {
	Type         string `json:"type"     validate:"required,min=2,max=50"`
	Location     string `json:"location" validate:"required,min=2,max=100"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	Availability *bool  `json:"availability,omitempty"`
}

type UpdateRoomRequest struct {
	Type         string `json:"type"     validate:"required,min=2,max=50"`
	Location     string `json:"location" validate:"required,min=2,max=100"`
	Capacity     int    `json:"capacity" validate:"required,gt=0"`
	Availability *bool  `json:"availability,omitempty"`
}

func (r *CreateRoomRequest) ToModel() model.RoomModel {
	room := model.RoomModel{
		Type:         r.Type,
		Location:     r.Location,
		Capacity:     r.Capacity,
		Availability: true,
	}
	if r.Availability != nil {
		room.Availability = *r.Availability
	}
	return room
}

func (r *UpdateRoomRequest) ApplyToModel(dst *model.RoomModel) {
	dst.Type = r.Type
	dst.Location = r.Location
	dst.Capacity = r.Capacity
	if r.Availability != nil {
		dst.Availability = *r.Availability
	}
}

/* =======================================================
   Booking
   ======================================================= */

type BookRoomRequest struct {
	RoomID    string `json:"roomId"    validate:"required,uuid4"`
	Date      string `json:"date"      validate:"required"` // "YYYY-MM-DD"
	StartTime string `json:"startTime" validate:"required"` // "HH:mm"
	EndTime   string `json:"endTime"   validate:"required"`
}

// Parse converts and enforces start < end.
func (r *BookRoomRequest) Parse() (uuid.UUID, time.Time, dbtime.Tod, dbtime.Tod, error) {
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, dbtime.Tod{}, errors.New("invalid room id")
	}
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, dbtime.Tod{}, errors.New("invalid date format (want YYYY-MM-DD)")
	}
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, dbtime.Tod{}, errors.New("invalid startTime format (want HH:mm)")
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, dbtime.Tod{}, errors.New("invalid endTime format (want HH:mm)")
	}
	if !start.Before(end) {
		return uuid.Nil, time.Time{}, dbtime.Tod{}, dbtime.Tod{}, errors.New("startTime must be before endTime")
	}
	return roomID, date, start, end, nil
}
