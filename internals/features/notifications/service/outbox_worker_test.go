package service

import (
	"errors"
	"testing"
	"time"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/notifications/model"
)

func TestMarkAttempt(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	sendErr := errors.New("smtp: connection refused")

	t.Run("successful send marks sent with timestamp", func(t *testing.T) {
		row := model.NotificationOutboxModel{Status: model.OutboxPending}
		if !markAttempt(&row, nil, now) {
			t.Fatal("delivered row must report success")
		}
		if row.Status != model.OutboxSent {
			t.Errorf("status = %s, want sent", row.Status)
		}
		if row.Attempts != 1 {
			t.Errorf("attempts = %d, want 1", row.Attempts)
		}
		if row.SentAt == nil || !row.SentAt.Equal(now) {
			t.Errorf("SentAt = %v, want %v", row.SentAt, now)
		}
	})

	t.Run("failed send stays pending until attempts run out", func(t *testing.T) {
		row := model.NotificationOutboxModel{Status: model.OutboxPending}
		for i := 1; i < maxAttempts; i++ {
			if markAttempt(&row, sendErr, now) {
				t.Fatal("failed send must not report success")
			}
			if row.Status != model.OutboxPending {
				t.Fatalf("status after attempt %d = %s, want pending", i, row.Status)
			}
		}
		if row.Attempts != maxAttempts-1 {
			t.Errorf("attempts = %d, want %d", row.Attempts, maxAttempts-1)
		}
	})

	t.Run("final failed attempt moves row to failed", func(t *testing.T) {
		row := model.NotificationOutboxModel{Status: model.OutboxPending, Attempts: maxAttempts - 1}
		if markAttempt(&row, sendErr, now) {
			t.Fatal("failed send must not report success")
		}
		if row.Status != model.OutboxFailed {
			t.Errorf("status = %s, want failed", row.Status)
		}
		if row.SentAt != nil {
			t.Error("failed row must not carry SentAt")
		}
	})
}
