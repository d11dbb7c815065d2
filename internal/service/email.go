package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/queue/client"
	"github.com/regportal/backend/internal/queue/task"
	"github.com/regportal/backend/pkg/logger"
)

// EmailService enqueues the approval notice for async delivery. It is
// fire-and-forget: enqueue failures are logged, never surfaced.
type EmailService struct {
	enabled bool
}

func newEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{enabled: cfg.Enabled}
}

func (s *EmailService) NotifyApproved(ctx context.Context, rec domain.UserRecord) {
	if !s.enabled || rec.Email == "" {
		return
	}

	t, err := task.NewApprovalEmailTask(rec.Email, rec.FirstName)
	if err != nil {
		logger.Error("build approval email task failed", zap.Error(err))
		return
	}

	c := client.GetClient(ctx)
	if c == nil {
		logger.Error("approval email enqueue skipped, no queue client")
		return
	}

	if _, err := c.Enqueue(t); err != nil {
		logger.Error("enqueue approval email failed", zap.Error(err))
	}
}
