package service

import (
	"gopkg.in/gomail.v2"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/configs"
)

// Mailer sends one message. The worker only depends on this surface.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg configs.AppConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
