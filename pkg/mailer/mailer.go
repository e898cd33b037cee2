package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
)

// Message is a plain-text email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Sender delivers email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP sender, or a log-only sender when no SMTP host is configured.
func New(cfg *config.MailConfig, logger *zap.Logger) Sender {
	if cfg.SMTPHost == "" {
		logger.Warn("mail.smtp_host not set, emails will only be logged")
		return &logSender{logger: logger}
	}
	return &smtpSender{cfg: *cfg, logger: logger, send: smtp.SendMail}
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	cfg    config.MailConfig
	logger *zap.Logger
	send   sendFunc
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("mailer: no recipients")
	}

	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	}

	if err := s.send(addr, auth, s.cfg.From, msg.To, buildMessage(s.cfg.From, msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", strings.Join(msg.To, ","), err)
	}

	s.logger.Debug("email sent", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func buildMessage(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

type logSender struct {
	logger *zap.Logger
}

func (s *logSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email not delivered (no smtp host)",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
