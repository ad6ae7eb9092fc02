package email

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"github.com/taskflow/backend/internal/infrastructure/config"
)

// Sender delivers transactional mail to a single recipient
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender implements Sender over SMTP using gomail
type SMTPSender struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg config.EmailConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
	}
}

// Send dials the configured SMTP server and delivers one message
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if s.cfg.Host == "" || s.cfg.From == "" {
		s.logger.Warn("email config missing, skipping delivery",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}

var _ Sender = (*SMTPSender)(nil)

// NoopSender discards messages, used when email is disabled and in tests
type NoopSender struct{}

// Send does nothing
func (NoopSender) Send(_, _, _ string) error { return nil }

var _ Sender = NoopSender{}
