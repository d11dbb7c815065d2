package worker

import (
	"context"

	"github.com/regportal/backend/internal/config"
	emailProvider "github.com/regportal/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendApprovalEmail(ctx context.Context, email string, firstName string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
