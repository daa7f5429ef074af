package service

import (
	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/repository"
)

// MaxRedeliveries caps retry attempts per outbound email. The count is the
// persisted retry_count column, so the cap holds across worker restarts.
const MaxRedeliveries = 3

// RetryWorker redelivers journaled emails that failed their first attempt.
// Jobs arrive as outbound email IDs; cmd/worker feeds the channel from the
// broker.
type RetryWorker struct {
	OutboundRepo repository.OutboundEmailRepositoryInterface
	JobChan      <-chan int
	SendFunc     func(e *model.OutboundEmail) error
	Log          *zap.SugaredLogger
}

func NewRetryWorker(repo repository.OutboundEmailRepositoryInterface, jobChan <-chan int, sendFunc func(e *model.OutboundEmail) error, log *zap.SugaredLogger) *RetryWorker {
	return &RetryWorker{
		OutboundRepo: repo,
		JobChan:      jobChan,
		SendFunc:     sendFunc,
		Log:          log,
	}
}

// Start processes jobs until the channel closes.
func (w *RetryWorker) Start() {
	for jobID := range w.JobChan {
		email, err := w.OutboundRepo.GetByID(jobID)
		if err != nil {
			w.Log.Warnw("failed to fetch outbound email", "id", jobID, "error", err)
			continue
		}
		if email == nil {
			w.Log.Warnw("outbound email not found", "id", jobID)
			continue
		}
		if email.Status == "sent" {
			continue // already delivered by a previous retry
		}
		if email.RetryCount >= MaxRedeliveries {
			w.Log.Warnw("giving up on outbound email", "id", email.ID, "retries", email.RetryCount)
			continue
		}

		if err := w.SendFunc(email); err != nil {
			email.Status = "failed"
			email.LastError = err.Error()
		} else {
			email.Status = "sent"
			email.LastError = ""
		}
		email.RetryCount++

		if err := w.OutboundRepo.Update(email); err != nil {
			w.Log.Warnw("failed to update outbound email", "id", email.ID, "error", err)
		}
	}
}
