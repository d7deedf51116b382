package queries

import (
	"context"
)

// NotificationQueries exposes the outbox queue to the admin surface.
type NotificationQueries interface {
	// ListJobs returns jobs in the given status, oldest first.
	// An empty status means jobs that are still waiting to run.
	ListJobs(ctx context.Context, status string, limit int32) ([]*NotificationJobView, error)
}

type NotificationJobReadStore interface {
	GetPendingJobs(ctx context.Context, limit int32) ([]*NotificationJobView, error)
	GetJobsByStatus(ctx context.Context, status string, limit int32) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationJobReadStore
}

func NewNotificationQueries(readStore NotificationJobReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListJobs(ctx context.Context, status string, limit int32) ([]*NotificationJobView, error) {
	if status == "" {
		return q.readStore.GetPendingJobs(ctx, limit)
	}
	return q.readStore.GetJobsByStatus(ctx, status, limit)
}
