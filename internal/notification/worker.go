package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/config"
	"meetup-api/internal/pkg/errs"
)

// Worker drains the notification queue: claim a batch, deliver each job,
// then ack, reschedule with backoff, or fail it terminally. Losing a
// worker mid-batch only delays jobs; the stuck-job requeue returns them
// to the queue after the visibility threshold.
type Worker struct {
	store  JobStore
	mailer Mailer
	clock  clock.Clock
	cfg    config.NotifierConfig

	done chan struct{}
}

func NewWorker(store JobStore, mailer Mailer, clk clock.Clock, cfg config.NotifierConfig) *Worker {
	return &Worker{
		store:  store,
		mailer: mailer,
		clock:  clk,
		cfg:    cfg,
		// Allocated here, not in Start: Wait may run concurrently with
		// Start on another goroutine.
		done: make(chan struct{}),
	}
}

// Start runs the polling loop until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	defer close(w.done)

	slog.Info("notification worker started",
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize,
		"max_attempts", w.cfg.MaxAttempts)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("notification worker stopped")
			return
		case <-ticker.C:
			if n, err := w.store.RequeueStuck(ctx, w.clock.Now().Add(-w.cfg.StuckThreshold)); err != nil {
				slog.Error("failed to requeue stuck jobs", "error", err.Error())
			} else if n > 0 {
				slog.Warn("requeued stuck notification jobs", "count", n)
			}

			if _, err := w.ProcessOnce(ctx); err != nil {
				slog.Error("notification batch failed", "error", err.Error())
			}
		}
	}
}

// Wait blocks until a started worker has exited.
func (w *Worker) Wait() {
	<-w.done
}

// ProcessOnce claims and handles a single batch. Returns the number of
// claimed jobs; tests and the drain path call this directly.
func (w *Worker) ProcessOnce(ctx context.Context) (int, error) {
	jobs, err := w.store.Claim(ctx, w.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		w.handle(ctx, job)
	}
	return len(jobs), nil
}

func (w *Worker) handle(ctx context.Context, job Job) {
	err := w.deliver(ctx, job)
	if err == nil {
		if ackErr := w.store.MarkSent(ctx, job.ID); ackErr != nil {
			// The job stays in sending and the requeue path redelivers it:
			// at-least-once, duplicates allowed
			slog.Error("failed to ack notification job", "job_id", job.ID, "error", ackErr.Error())
		}
		return
	}

	if errors.Is(err, ErrPermanent) || job.Attempts >= w.cfg.MaxAttempts {
		slog.Error("notification job failed terminally",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", job.Attempts,
			"error", err.Error())
		if failErr := w.store.MarkFailed(ctx, job.ID, err.Error()); failErr != nil {
			slog.Error("failed to mark notification job failed", "job_id", job.ID, "error", failErr.Error())
		}
		return
	}

	runAt := w.clock.Now().Add(w.backoff(job.Attempts))
	slog.Warn("notification job delivery failed, rescheduling",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"run_at", runAt,
		"error", err.Error())
	if rescheduleErr := w.store.Reschedule(ctx, job.ID, runAt, err.Error()); rescheduleErr != nil {
		slog.Error("failed to reschedule notification job", "job_id", job.ID, "error", rescheduleErr.Error())
	}
}

// backoff doubles per attempt starting from the configured base:
// base, 2·base, 4·base, …
func (w *Worker) backoff(attempts int32) time.Duration {
	d := w.cfg.RetryBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
	}
	return d
}

func (w *Worker) deliver(ctx context.Context, job Job) error {
	sendCtx, cancel := context.WithTimeout(ctx, w.cfg.SendTimeout)
	defer cancel()

	switch job.Topic {
	case TopicSubscriptionCreated:
		var payload SubscriptionCreatedPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return errs.Mark(err, ErrPermanent)
		}
		return w.mailer.Send(sendCtx, renderSubscriptionCreated(payload))
	default:
		return fmt.Errorf("unknown topic %q: %w", job.Topic, ErrPermanent)
	}
}

// renderSubscriptionCreated addresses the organizer, matching what the
// subscriber sees on the meetup page.
func renderSubscriptionCreated(p SubscriptionCreatedPayload) Message {
	subject := fmt.Sprintf("New subscription to %s", p.MeetupTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s (%s) just subscribed to your meetup %q starting at %s.\n",
		p.OrganizerName,
		p.SubscriberName,
		p.SubscriberEmail,
		p.MeetupTitle,
		p.StartsAt.Format(time.RFC1123),
	)
	return Message{
		To:      p.OrganizerEmail,
		ToName:  p.OrganizerName,
		Subject: subject,
		Body:    body,
	}
}
