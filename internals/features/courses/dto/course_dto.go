package dto

import (
	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/model"
)

type CreateCourseRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=150"`
	Code        string `json:"code"        validate:"required,min=2,max=20"`
	Description string `json:"description" validate:"required"`
	Credits     string `json:"credits"     validate:"required"`
	Faculty     string `json:"faculty"     validate:"required,uuid4"`
}

// UpdateCourseRequest is a full update, same required fields as create.
type UpdateCourseRequest = CreateCourseRequest

func (r *CreateCourseRequest) ToModel() (model.CourseModel, error) {
	facultyID, err := uuid.Parse(r.Faculty)
	if err != nil {
		return model.CourseModel{}, err
	}
	return model.CourseModel{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		Credits:     r.Credits,
		FacultyID:   facultyID,
	}, nil
}

func (r *CreateCourseRequest) ApplyToModel(dst *model.CourseModel) error {
	facultyID, err := uuid.Parse(r.Faculty)
	if err != nil {
		return err
	}
	dst.Name = r.Name
	dst.Code = r.Code
	dst.Description = r.Description
	dst.Credits = r.Credits
	dst.FacultyID = facultyID
	return nil
}
