package repository

import (
	"context"
	"time"

	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	RequeueStuckNotificationJobs(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  "queued",
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimJobs moves up to limit due jobs to sending and increments their
// attempt counters in a single statement. SKIP LOCKED keeps concurrent
// workers from claiming the same job.
func (r *NotificationRepository) ClaimJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error) {
	jobs, err := r.queries.ClaimNotificationJobs(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:     jobID,
		Status: status,
	}
	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

func (r *NotificationRepository) RescheduleJob(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, runAt time.Time, lastError *string) error {
	params := sqlc.RescheduleNotificationJobParams{
		ID:    jobID,
		RunAt: pgtype.Timestamptz{Time: runAt, Valid: true},
	}
	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	}

	if err := r.queries.RescheduleNotificationJob(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

// RequeueStuckJobs returns jobs stranded in sending (worker crash
// between claim and ack) back to the queue once they age past cutoff.
func (r *NotificationRepository) RequeueStuckJobs(ctx context.Context, db sqlc.DBTX, cutoff time.Time) (int64, error) {
	affected, err := r.queries.RequeueStuckNotificationJobs(ctx, db, pgtype.Timestamptz{Time: cutoff, Valid: true})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stuck notification jobs", err)
	}
	return affected, nil
}
