package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/plateful/restaurant-admin/internal/config"
	"github.com/plateful/restaurant-admin/internal/httperr"
)

// Mailer delivers outbound mail synchronously. A delivery failure is
// fatal for the request that triggered it; there is no retry queue.
type Mailer interface {
	Send(subject, recipient, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &SMTPMailer{
		dialer: dialer,
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(subject, recipient, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return httperr.ErrBusiness(httperr.CodeEmailDelivery)
	}
	return nil
}
