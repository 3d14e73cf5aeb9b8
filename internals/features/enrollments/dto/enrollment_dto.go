package dto

type EnrollRequest struct {
	StudentID     string `json:"studentId"     validate:"required,uuid4"`
	CourseID      string `json:"courseId"      validate:"required,uuid4"`
	EnrollmentKey string `json:"enrollmentKey" validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
}

type UnenrollRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid4"`
	CourseID  string `json:"courseId"  validate:"required,uuid4"`
}
