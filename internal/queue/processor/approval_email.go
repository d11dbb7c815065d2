package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/regportal/backend/internal/queue/task"
	"github.com/regportal/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type approvalEmailProcessor struct {
	workers *worker.Workers
}

func NewApprovalEmailProcessor(workers *worker.Workers) *approvalEmailProcessor {
	return &approvalEmailProcessor{
		workers: workers,
	}
}

func (p *approvalEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.ApprovalEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process approval email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendApprovalEmail(ctx, data.Email, data.FirstName); err != nil {
		return fmt.Errorf("send approval email failed: %w", err)
	}

	return nil
}
