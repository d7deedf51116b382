package notification

import (
	"context"
	"log/slog"
)

// LogMailer writes the rendered mail to the log instead of a server.
// Used in tests and local development (SMTP_DRIVER=log).
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	slog.Info("mail delivered to log",
		"to", msg.To,
		"subject", msg.Subject,
		"body_len", len(msg.Body))
	return nil
}
