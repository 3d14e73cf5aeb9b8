package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/notifications/model"
)

const (
	workerInterval = 30 * time.Second
	claimBatchSize = 50
	maxAttempts    = 3
)

// OutboxWorker drains pending notification rows in the background.
// Per-item failures are logged and retried up to maxAttempts; they never
// surface into the request that enqueued them.
type OutboxWorker struct {
	DB     *gorm.DB
	Mailer Mailer
	quit   chan struct{}
}

func NewOutboxWorker(db *gorm.DB, mailer Mailer) *OutboxWorker {
	return &OutboxWorker{DB: db, Mailer: mailer, quit: make(chan struct{})}
}

func (w *OutboxWorker) Start() {
	go func() {
		ticker := time.NewTicker(workerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.DrainOnce()
			case <-w.quit:
				return
			}
		}
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.quit)
}

// DrainOnce processes one batch of pending rows.
func (w *OutboxWorker) DrainOnce() {
	var rows []model.NotificationOutboxModel
	if err := w.DB.
		Where("status = ? AND attempts < ?", model.OutboxPending, maxAttempts).
		Order("created_at asc").
		Limit(claimBatchSize).
		Find(&rows).Error; err != nil {
		log.Printf("[OUTBOX ERROR] fetch pending failed: %v", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	sent := 0
	for i := range rows {
		row := &rows[i]
		err := w.Mailer.Send(row.Recipient, row.Subject, RenderTimetableUpdateBody(row.Recipient))
		if markAttempt(row, err, time.Now()) {
			sent++
		} else {
			log.Printf("[OUTBOX ERROR] send to %s failed (attempt %d): %v", row.Recipient, row.Attempts, err)
		}

		if err := w.DB.Save(row).Error; err != nil {
			log.Printf("[OUTBOX ERROR] save row %s failed: %v", row.ID, err)
		}
	}

	log.Printf("[OUTBOX] batch done: %d sent, %d total", sent, len(rows))
}

// markAttempt records one delivery attempt on the row and reports success.
// A row that exhausts maxAttempts moves to failed; a delivered row moves to
// sent with SentAt stamped.
func markAttempt(row *model.NotificationOutboxModel, sendErr error, now time.Time) bool {
	row.Attempts++
	if sendErr != nil {
		if row.Attempts >= maxAttempts {
			row.Status = model.OutboxFailed
		}
		return false
	}
	row.Status = model.OutboxSent
	row.SentAt = &now
	return true
}
