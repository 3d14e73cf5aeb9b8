package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationService "github.com/JaninduMunasinghe/university-timetable-management/internals/features/notifications/service"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/dto"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/service"
	userModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
	helper "github.com/JaninduMunasinghe/university-timetable-management/internals/helpers"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db, Validate: validator.New()}
}

// =========================
// Create session
// =========================
func (ctrl *TimetableController) CreateTimetable(c *fiber.Ctx) error {
	var body dto.CreateTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	parsed, err := body.Parse()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.ensureFaculty(parsed.FacultyID); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	conflict, err := ctrl.checkConflict(parsed, uuid.Nil)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if conflict {
		return helper.Error(c, fiber.StatusBadRequest, "A timetable already exists for this time slot and location")
	}

	session := parsed.ToModel()
	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timetable")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable created", session)
}

// =========================
// Get all sessions
// =========================
func (ctrl *TimetableController) GetTimetables(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	var total int64
	if err := ctrl.DB.Model(&model.TimetableModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var sessions []model.TimetableModel
	if err := ctrl.DB.Order("day_of_week asc, start_time asc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"timetables": sessions,
		"meta":       helper.BuildPaginationMeta(p, total),
	})
}

// =========================
// Get single session
// =========================
func (ctrl *TimetableController) GetTimetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var session model.TimetableModel
	if err := ctrl.DB.First(&session, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "TimeTable not found")
	}
	return helper.Success(c, "OK", session)
}

// =========================
// Update session
// =========================
func (ctrl *TimetableController) UpdateTimetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTimetableRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.TimetableModel
	if err := ctrl.DB.First(&session, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "TimeTable not found")
	}

	parsed, err := body.Parse()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.ensureFaculty(parsed.FacultyID); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Re-check against all other sessions, excluding the one being moved
	conflict, err := ctrl.checkConflict(parsed, session.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if conflict {
		return helper.Error(c, fiber.StatusBadRequest, "A timetable already exists for this time slot and location")
	}

	parsed.ApplyToModel(&session)
	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update timetable")
	}

	// Best-effort notification fan-out; failures never fail the update.
	n, err := notificationService.EnqueueTimetableUpdate(ctrl.DB, session.CourseID, notificationService.TimetableUpdatePayload{
		CourseID:  session.CourseID.String(),
		DayOfWeek: string(session.DayOfWeek),
		StartTime: session.StartTime.Format("15:04"),
		EndTime:   session.EndTime.Format("15:04"),
	})
	if err != nil {
		log.Printf("[ERROR] enqueue timetable notifications: %v", err)
	} else if n > 0 {
		log.Printf("[INFO] queued %d timetable update notifications", n)
	}

	return helper.Success(c, "Timetable updated", session)
}

// =========================
// Delete session
// =========================
func (ctrl *TimetableController) DeleteTimetable(c *fiber.Ctx) error {
	id := c.Params("id")

	var session model.TimetableModel
	if err := ctrl.DB.First(&session, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "TimeTable not found")
	}

	if err := ctrl.DB.Delete(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete timetable")
	}
	return helper.Success(c, "TimeTable Deleted Successfully", nil)
}

// ensureFaculty rejects faculty ids that do not resolve to a user tagged
// with the faculty role.
func (ctrl *TimetableController) ensureFaculty(facultyID uuid.UUID) error {
	var user userModel.UserModel
	if err := ctrl.DB.Select("id", "role").First(&user, "id = ?", facultyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Invalid faculty ID. Please provide a valid faculty member ID")
		}
		return errors.New("Internal server error")
	}
	if !user.IsFaculty() {
		return errors.New("Invalid faculty ID. Please provide a valid faculty member ID")
	}
	return nil
}

// checkConflict fetches the conflict scope (same day, room, faculty) and
// applies the half-open interval test.
func (ctrl *TimetableController) checkConflict(p dto.Parsed, excludeID uuid.UUID) (bool, error) {
	var existing []model.TimetableModel
	if err := ctrl.DB.
		Where("day_of_week = ? AND room_id = ? AND faculty_id = ?", p.DayOfWeek, p.RoomID, p.FacultyID).
		Find(&existing).Error; err != nil {
		return false, err
	}
	return service.HasConflict(existing, p.StartTime, p.EndTime, excludeID), nil
}
