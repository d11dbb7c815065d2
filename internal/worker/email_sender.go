package worker

import (
	"context"
	"fmt"

	"github.com/regportal/backend/internal/config"
	emailProvider "github.com/regportal/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type approvalEmailInput struct {
	FirstName string
}

func (s *emailSender) SendApprovalEmail(ctx context.Context, email string, firstName string) error {
	subject := "Your account has been approved"

	templateInput := approvalEmailInput{firstName}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Approval, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
