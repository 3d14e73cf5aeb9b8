package service

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/notifications/model"
)

// TimetableUpdatePayload is what gets stored per outbox row.
type TimetableUpdatePayload struct {
	CourseID  string `json:"course_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// EnqueueTimetableUpdate writes one pending outbox row per enrolled
// student of the course. Runs inside the update request but does no I/O
// beyond the insert; delivery happens in the worker.
func EnqueueTimetableUpdate(db *gorm.DB, courseID uuid.UUID, payload TimetableUpdatePayload) (int, error) {
	var emails []string
	if err := db.Table("enrollments").
		Select("users.email").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.course_id = ?", courseID).
		Scan(&emails).Error; err != nil {
		return 0, err
	}
	if len(emails) == 0 {
		return 0, nil
	}

	raw, err := sonic.Marshal(payload)
	if err != nil {
		return 0, err
	}

	rows := make([]model.NotificationOutboxModel, 0, len(emails))
	for _, email := range emails {
		rows = append(rows, model.NotificationOutboxModel{
			Recipient: email,
			Subject:   "Timetable Update Notification",
			Payload:   datatypes.JSON(raw),
			Status:    model.OutboxPending,
		})
	}

	if err := db.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// RenderTimetableUpdateBody builds the HTML body for one recipient.
func RenderTimetableUpdateBody(recipient string) string {
	return fmt.Sprintf(
		"<p>Dear %s,</p><p>The timetable for your enrolled course has been updated. Please check the updated schedule.</p>",
		recipient,
	)
}
