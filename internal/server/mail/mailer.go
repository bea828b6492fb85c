// Package mail отвечает за отправку писем восстановления пароля.
//
// Доставка почты — внешний коллаборатор: сервис видит только интерфейс
// Mailer. SMTPMailer шлёт письмо реальным SMTP-сервером, NoopMailer
// используется в dev-окружении и в тестах.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/achola/yummy-recipes/internal/server/config"
)

// Mailer — отправка письма со ссылкой восстановления пароля.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

// SMTPMailer отправляет письма через SMTP (PLAIN auth).
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer создаёт SMTP-отправитель из конфига.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPasswordReset шлёт письмо с reset-токеном.
// Токен живёт auth.reset_ttl (180с по умолчанию) — об этом пишем в письме.
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, token string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	body := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: Yummy Recipes password reset\r\n\r\n"+
			"Use this token to reset your password (valid for a few minutes):\r\n\r\n%s\r\n",
		to, m.cfg.From, token,
	)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(body)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// NoopMailer ничего не отправляет, только пишет событие в лог.
// Токен в лог не попадает.
type NoopMailer struct {
	log *zap.SugaredLogger
}

// NewNoopMailer создаёт заглушку отправителя.
func NewNoopMailer(log *zap.SugaredLogger) *NoopMailer {
	return &NoopMailer{log: log}
}

func (m *NoopMailer) SendPasswordReset(_ context.Context, to, _ string) error {
	if m.log != nil {
		m.log.Infow("password reset mail suppressed (mail disabled)", "to", to)
	}
	return nil
}
