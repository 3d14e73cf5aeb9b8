package dto

import (
	"errors"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

// CreateTimetableRequest carries a proposed session. Times are strings
// ("HH:mm") to keep the FE side simple; Parse converts and checks start < end.
type CreateTimetableRequest struct {
	CourseID  string `json:"courseId"   validate:"required,uuid4"`
	DayOfWeek string `json:"dayOfWeek"  validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime"  validate:"required"`
	EndTime   string `json:"endTime"    validate:"required"`
	FacultyID string `json:"facultyId"  validate:"required,uuid4"`
	RoomID    string `json:"locationId" validate:"required,uuid4"`
}

// UpdateTimetableRequest is a full update with the same required fields.
type UpdateTimetableRequest = CreateTimetableRequest

// Parsed is the converted form of a timetable request.
type Parsed struct {
	CourseID  uuid.UUID
	DayOfWeek model.DayOfWeek
	StartTime dbtime.Tod
	EndTime   dbtime.Tod
	FacultyID uuid.UUID
	RoomID    uuid.UUID
}

func (r *CreateTimetableRequest) Parse() (Parsed, error) {
	var p Parsed

	courseID, err := uuid.Parse(r.CourseID)
	if err != nil {
		return p, errors.New("invalid course id")
	}
	facultyID, err := uuid.Parse(r.FacultyID)
	if err != nil {
		return p, errors.New("invalid faculty id")
	}
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return p, errors.New("invalid location id")
	}

	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return p, errors.New("invalid startTime format (want HH:mm)")
	}
	end, err := dbtime.Parse(r.EndTime)
	if err != nil {
		return p, errors.New("invalid endTime format (want HH:mm)")
	}
	if !start.Before(end) {
		return p, errors.New("startTime must be before endTime")
	}

	p = Parsed{
		CourseID:  courseID,
		DayOfWeek: model.DayOfWeek(r.DayOfWeek),
		StartTime: start,
		EndTime:   end,
		FacultyID: facultyID,
		RoomID:    roomID,
	}
	return p, nil
}

func (p Parsed) ToModel() model.TimetableModel {
	return model.TimetableModel{
		CourseID:  p.CourseID,
		DayOfWeek: p.DayOfWeek,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		FacultyID: p.FacultyID,
		RoomID:    p.RoomID,
	}
}

func (p Parsed) ApplyToModel(dst *model.TimetableModel) {
	dst.CourseID = p.CourseID
	dst.DayOfWeek = p.DayOfWeek
	dst.StartTime = p.StartTime
	dst.EndTime = p.EndTime
	dst.FacultyID = p.FacultyID
	dst.RoomID = p.RoomID
}
