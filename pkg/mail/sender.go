package mail

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type SenderConfig struct {
	Email    string
	Password string
	Host     string
	Port     int
	// FromName is shown as the display name of the sender. Optional.
	FromName string
	Timeout  time.Duration
	// InsecureSkipVerify disables certificate checks on STARTTLS, for local relays only.
	InsecureSkipVerify bool
}

type sender struct {
	from   string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("Sender.SendMail: no recipients")
	}
	if err := s.dialer.DialAndSend(s.buildMessage(to, subject, htmlBody, textBody)); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func (s *sender) buildMessage(to []string, subject, htmlBody, textBody string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetDateHeader("Date", time.Now())

	switch {
	case textBody != "" && htmlBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	default:
		m.SetBody("text/plain", textBody)
	}
	return m
}

func NewMailSender(cfg SenderConfig) Sender {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}
	if cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host}
	}
	from := cfg.Email
	if cfg.FromName != "" {
		from = mail.NewMessage().FormatAddress(cfg.Email, cfg.FromName)
	}
	return &sender{
		from:   from,
		dialer: d,
	}
}
