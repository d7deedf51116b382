//go:build unit

package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"meetup-api/internal/notification"
	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workerNow = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

func testNotifierConfig() config.NotifierConfig {
	return config.NotifierConfig{
		Enabled:        true,
		PollInterval:   time.Second,
		BatchSize:      10,
		MaxAttempts:    3,
		RetryBackoff:   30 * time.Second,
		SendTimeout:    5 * time.Second,
		StuckThreshold: 5 * time.Minute,
	}
}

func subscriptionPayload(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal(notification.SubscriptionCreatedPayload{
		SubscriptionID:  uuid.New(),
		MeetupID:        uuid.New(),
		MeetupTitle:     "Go Night Tokyo",
		StartsAt:        workerNow.Add(48 * time.Hour),
		OrganizerName:   "Hanako Organizer",
		OrganizerEmail:  "hanako@example.com",
		SubscriberName:  "Taro Tester",
		SubscriberEmail: "taro@example.com",
	})
	require.NoError(t, err)
	return payload
}

// fakeJobStore hands out queued jobs and records every state transition.
// Rescheduled jobs go back into the queue with the attempt counter bumped,
// the way the claim query bumps it on redelivery.
type fakeJobStore struct {
	mu          sync.Mutex
	batch       []notification.Job
	byID        map[uuid.UUID]notification.Job
	sent        []uuid.UUID
	failed      map[uuid.UUID]string
	rescheduled map[uuid.UUID]time.Time
	requeued    int64
}

func newFakeJobStore(batch ...notification.Job) *fakeJobStore {
	byID := make(map[uuid.UUID]notification.Job, len(batch))
	for _, job := range batch {
		byID[job.ID] = job
	}
	return &fakeJobStore{
		batch:       batch,
		byID:        byID,
		failed:      make(map[uuid.UUID]string),
		rescheduled: make(map[uuid.UUID]time.Time),
	}
}

func (s *fakeJobStore) Claim(_ context.Context, limit int32) ([]notification.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(int(limit), len(s.batch))
	claimed := s.batch[:n]
	s.batch = s.batch[n:]
	return claimed, nil
}

func (s *fakeJobStore) MarkSent(_ context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, jobID)
	return nil
}

func (s *fakeJobStore) MarkFailed(_ context.Context, jobID uuid.UUID, lastError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed[jobID] = lastError
	return nil
}

func (s *fakeJobStore) Reschedule(_ context.Context, jobID uuid.UUID, runAt time.Time, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rescheduled[jobID] = runAt
	job := s.byID[jobID]
	job.Attempts++
	s.byID[jobID] = job
	s.batch = append(s.batch, job)
	return nil
}

func (s *fakeJobStore) RequeueStuck(_ context.Context, _ time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requeued, nil
}

// fakeMailer fails sendErrs[i] for the i-th call, then succeeds.
type fakeMailer struct {
	mu       sync.Mutex
	sendErrs []error
	messages []notification.Message
	calls    int
}

func (m *fakeMailer) Send(_ context.Context, msg notification.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	call := m.calls
	m.calls++
	if call < len(m.sendErrs) && m.sendErrs[call] != nil {
		return m.sendErrs[call]
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestWorker_ProcessOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers and acks a queued job", func(t *testing.T) {
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  subscriptionPayload(t),
			Attempts: 1,
		}
		store := newFakeJobStore(job)
		mailer := &fakeMailer{}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), testNotifierConfig())

		n, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.Len(t, mailer.messages, 1)
		msg := mailer.messages[0]
		assert.Equal(t, "hanako@example.com", msg.To)
		assert.Equal(t, "New subscription to Go Night Tokyo", msg.Subject)
		assert.Contains(t, msg.Body, "Taro Tester")
		assert.Contains(t, msg.Body, "taro@example.com")

		assert.Equal(t, []uuid.UUID{job.ID}, store.sent)
		assert.Empty(t, store.failed)
		assert.Empty(t, store.rescheduled)
	})

	t.Run("empty queue is a no-op", func(t *testing.T) {
		store := newFakeJobStore()
		worker := notification.NewWorker(store, &fakeMailer{}, clock.NewMockClock(workerNow), testNotifierConfig())

		n, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("transient failure reschedules with exponential backoff", func(t *testing.T) {
		cfg := testNotifierConfig()
		cases := []struct {
			attempts int32
			wantWait time.Duration
		}{
			{attempts: 1, wantWait: cfg.RetryBackoff},
			{attempts: 2, wantWait: 2 * cfg.RetryBackoff},
		}

		for _, tc := range cases {
			job := notification.Job{
				ID:       uuid.New(),
				Kind:     notification.KindEmail,
				Topic:    notification.TopicSubscriptionCreated,
				Payload:  subscriptionPayload(t),
				Attempts: tc.attempts,
			}
			store := newFakeJobStore(job)
			mailer := &fakeMailer{sendErrs: []error{errors.New("connection refused")}}
			worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), cfg)

			_, err := worker.ProcessOnce(ctx)
			require.NoError(t, err)

			runAt, ok := store.rescheduled[job.ID]
			require.True(t, ok, "attempt %d should reschedule", tc.attempts)
			assert.True(t, workerNow.Add(tc.wantWait).Equal(runAt),
				"attempt %d: expected run_at %v, got %v", tc.attempts, workerNow.Add(tc.wantWait), runAt)
			assert.Empty(t, store.sent)
			assert.Empty(t, store.failed)
		}
	})

	t.Run("two transient failures then success ends sent with one delivered mail", func(t *testing.T) {
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  subscriptionPayload(t),
			Attempts: 1,
		}
		store := newFakeJobStore(job)
		mailer := &fakeMailer{sendErrs: []error{
			errors.New("connection refused"),
			errors.New("connection refused"),
		}}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), testNotifierConfig())

		for range 3 {
			_, err := worker.ProcessOnce(ctx)
			require.NoError(t, err)
		}

		assert.Equal(t, []uuid.UUID{job.ID}, store.sent)
		assert.Empty(t, store.failed)
		require.Len(t, mailer.messages, 1)
		assert.Equal(t, 3, mailer.calls)
		assert.Equal(t, "hanako@example.com", mailer.messages[0].To)
	})

	t.Run("permanent failure is terminal on the first attempt", func(t *testing.T) {
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  subscriptionPayload(t),
			Attempts: 1,
		}
		store := newFakeJobStore(job)
		mailer := &fakeMailer{sendErrs: []error{
			fmt.Errorf("recipient rejected: %w", notification.ErrPermanent),
		}}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), testNotifierConfig())

		_, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)

		assert.Contains(t, store.failed[job.ID], "recipient rejected")
		assert.Empty(t, store.rescheduled)
	})

	t.Run("exhausted attempts fail terminally", func(t *testing.T) {
		cfg := testNotifierConfig()
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  subscriptionPayload(t),
			Attempts: cfg.MaxAttempts,
		}
		store := newFakeJobStore(job)
		mailer := &fakeMailer{sendErrs: []error{errors.New("connection refused")}}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), cfg)

		_, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)

		assert.Contains(t, store.failed[job.ID], "connection refused")
		assert.Empty(t, store.rescheduled)
	})

	t.Run("malformed payload never retries", func(t *testing.T) {
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  []byte("{not json"),
			Attempts: 1,
		}
		store := newFakeJobStore(job)
		mailer := &fakeMailer{}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), testNotifierConfig())

		_, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)

		assert.NotEmpty(t, store.failed[job.ID])
		assert.Zero(t, mailer.calls)
	})

	t.Run("unknown topic never retries", func(t *testing.T) {
		job := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    "mystery_topic",
			Payload:  []byte("{}"),
			Attempts: 1,
		}
		store := newFakeJobStore(job)
		worker := notification.NewWorker(store, &fakeMailer{}, clock.NewMockClock(workerNow), testNotifierConfig())

		_, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)

		assert.Contains(t, store.failed[job.ID], "mystery_topic")
		assert.Empty(t, store.rescheduled)
	})

	t.Run("one bad job does not block the rest of the batch", func(t *testing.T) {
		bad := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  []byte("{not json"),
			Attempts: 1,
		}
		good := notification.Job{
			ID:       uuid.New(),
			Kind:     notification.KindEmail,
			Topic:    notification.TopicSubscriptionCreated,
			Payload:  subscriptionPayload(t),
			Attempts: 1,
		}
		store := newFakeJobStore(bad, good)
		mailer := &fakeMailer{}
		worker := notification.NewWorker(store, mailer, clock.NewMockClock(workerNow), testNotifierConfig())

		n, err := worker.ProcessOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		assert.Equal(t, []uuid.UUID{good.ID}, store.sent)
		assert.NotEmpty(t, store.failed[bad.ID])
	})
}

// Wait must have a happens-before edge with Start even when the caller
// reaches it before the worker goroutine has been scheduled.
func TestWorker_WaitBlocksUntilStopped(t *testing.T) {
	store := newFakeJobStore()
	worker := notification.NewWorker(store, &fakeMailer{}, clock.NewMockClock(workerNow), testNotifierConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Start(ctx)

	stopped := make(chan struct{})
	go func() {
		worker.Wait()
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not exit after context cancellation")
	}
}
