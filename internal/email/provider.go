package email

import (
	"log/slog"

	"jobport_backend/internal/config"
	"jobport_backend/internal/logger"

	gomail "gopkg.in/gomail.v2"
)

// Provider - отправка транзакционных писем (смена статуса отклика и т.п.)
type Provider interface {
	Send(to, subject, body string) error
}

type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.FromEmail,
	}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return p.dialer.DialAndSend(m)
}

// NoopProvider используется, когда SMTP не сконфигурирован: письмо
// уходит в лог, а не наружу.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, body string) error {
	logger.Debug("email suppressed (no smtp configured)",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}

// NewProvider выбирает реализацию по наличию SMTP-настроек
func NewProvider(cfg config.EmailConfig) Provider {
	if cfg.SMTPHost == "" {
		return NewNoopProvider()
	}
	return NewSMTPProvider(cfg)
}
