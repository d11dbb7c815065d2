package smtp

import (
	"errors"
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/regportal/backend/pkg/email"
)

type SMTPSender struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPSender(from, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	return &SMTPSender{
		from:   from,
		dialer: gomail.NewDialer(host, port, from, pass),
	}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email via smtp failed: %w", err)
	}

	return nil
}
