package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// NotificationOutboxModel maps the notification_outbox table. One row per
// recipient; the worker drains pending rows so mail delivery never runs
// inside a request.
type NotificationOutboxModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Recipient string         `gorm:"size:255;not null" json:"recipient"`
	Subject   string         `gorm:"size:255;not null" json:"subject"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	Status    OutboxStatus   `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Attempts  int            `gorm:"not null;default:0" json:"attempts"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationOutboxModel) TableName() string {
	return "notification_outbox"
}
