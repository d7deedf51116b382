package notification

import (
	"context"
	"strings"

	"meetup-api/internal/pkg/errs"
)

// ErrPermanent marks delivery failures that retrying cannot fix
// (rejected recipient, malformed message). The worker moves these jobs
// straight to failed.
var ErrPermanent = errs.New("permanent delivery failure")

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// classifySendErr wraps SMTP errors that indicate a bad recipient or
// message as permanent; everything else (connection, timeout, greylist)
// stays transient and retryable.
func classifySendErr(err error) error {
	if err == nil {
		return nil
	}
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "recipient") || strings.Contains(s, "mailbox") ||
		strings.Contains(s, "no such user") || strings.Contains(s, "sender") {
		return errs.Mark(err, ErrPermanent)
	}
	return err
}
