package notification

import (
	"context"
	"time"

	"meetup-api/internal/infra/repository"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Job is a claimed notification job as the worker sees it. Attempts
// already counts the claim in progress.
type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type JobStore interface {
	Claim(ctx context.Context, limit int32) ([]Job, error)
	MarkSent(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string) error
	Reschedule(ctx context.Context, jobID uuid.UUID, runAt time.Time, lastError string) error
	RequeueStuck(ctx context.Context, cutoff time.Time) (int64, error)
}

// PgJobStore runs the queue queries against the shared pool, outside any
// caller transaction: claim visibility is the queue's own concern.
type PgJobStore struct {
	pool *pgxpool.Pool
	repo *repository.NotificationRepository
}

func NewPgJobStore(pool *pgxpool.Pool, q *sqlc.Queries) *PgJobStore {
	return &PgJobStore{
		pool: pool,
		repo: repository.NewNotificationRepository(q),
	}
}

func (s *PgJobStore) Claim(ctx context.Context, limit int32) ([]Job, error) {
	rows, err := s.repo.ClaimJobs(ctx, s.pool, limit)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, len(rows))
	for i, row := range rows {
		jobs[i] = Job{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (s *PgJobStore) MarkSent(ctx context.Context, jobID uuid.UUID) error {
	return s.repo.UpdateJobStatus(ctx, s.pool, jobID, "sent", nil)
}

func (s *PgJobStore) MarkFailed(ctx context.Context, jobID uuid.UUID, lastError string) error {
	return s.repo.UpdateJobStatus(ctx, s.pool, jobID, "failed", &lastError)
}

func (s *PgJobStore) Reschedule(ctx context.Context, jobID uuid.UUID, runAt time.Time, lastError string) error {
	return s.repo.RescheduleJob(ctx, s.pool, jobID, runAt, &lastError)
}

func (s *PgJobStore) RequeueStuck(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.RequeueStuckJobs(ctx, s.pool, cutoff)
}
