package readstore

import (
	"context"

	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/usecase/queries"
)

type NotificationReadQueries interface {
	GetPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	GetNotificationJobsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNotificationJobsByStatusParams) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) GetPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.GetPendingNotificationJobs(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobView(row)
	}
	return result, nil
}

func (s *NotificationReadStore) GetJobsByStatus(ctx context.Context, status string, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.GetNotificationJobsByStatus(ctx, s.db, sqlc.GetNotificationJobsByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get notification jobs by status", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobView(row)
	}
	return result, nil
}

func toNotificationJobView(row sqlc.NotificationJobs) *queries.NotificationJobView {
	view := &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     row.RunAt.Time,
		Attempts:  row.Attempts,
		Status:    row.Status,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.LastError.Valid {
		view.LastError = &row.LastError.String
	}
	return view
}
