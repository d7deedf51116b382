package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"meetup-api/internal/pkg/config"
	"meetup-api/internal/pkg/errs"
)

// SMTPMailer talks plain SMTP with an optional AUTH PLAIN step. TLS is
// whatever the server side of the connection provides (dev setups run
// against MailHog-style containers on a local port).
type SMTPMailer struct {
	cfg         config.SMTPConfig
	dialTimeout time.Duration
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:         cfg,
		dialTimeout: 10 * time.Second,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !strings.Contains(msg.To, "@") {
		return errs.Mark(errs.New("invalid recipient address: "+msg.To), ErrPermanent)
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	dialer := &net.Dialer{Timeout: m.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if m.cfg.User != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(fromAddress(m.cfg.From)); err != nil {
		return classifySendErr(fmt.Errorf("failed to set sender: %w", err))
	}
	if err := client.Rcpt(msg.To); err != nil {
		return classifySendErr(fmt.Errorf("failed to set recipient: %w", err))
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := writer.Write([]byte(m.buildMessage(msg))); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// Quit failures after DATA are ignored, the message is already accepted
	_ = client.Quit()
	return nil
}

func (m *SMTPMailer) buildMessage(msg Message) string {
	var b strings.Builder
	b.WriteString("From: " + m.cfg.From + "\r\n")
	if msg.ToName != "" {
		b.WriteString(fmt.Sprintf("To: %s <%s>\r\n", msg.ToName, msg.To))
	} else {
		b.WriteString("To: " + msg.To + "\r\n")
	}
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return b.String()
}

// fromAddress extracts the bare address from a "Name <addr>" From header.
func fromAddress(from string) string {
	if i := strings.IndexByte(from, '<'); i >= 0 {
		if j := strings.IndexByte(from[i:], '>'); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}
