package readstore

import (
	"context"
	"time"

	"meetup-api/internal/domain/subscription"
	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/pkg/pgconv"
	"meetup-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubscriptionReadQueries interface {
	ListSubscriptionsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Subscriptions, error)
	ListActiveSubscriptionsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveSubscriptionsByUserParams) ([]sqlc.ListActiveSubscriptionsByUserRow, error)
	GetSubscriptionByUserAndMeetup(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSubscriptionByUserAndMeetupParams) (sqlc.Subscriptions, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries *sqlc.Queries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

// ExistingByUser returns the admission engine's input: every subscription
// the user holds, regardless of whether the meetup already happened.
func (s *SubscriptionReadStore) ExistingByUser(ctx context.Context, userID uuid.UUID) ([]subscription.Existing, error) {
	rows, err := s.queries.ListSubscriptionsByUser(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions by user", err)
	}

	result := make([]subscription.Existing, len(rows))
	for i, row := range rows {
		result[i] = subscription.Existing{
			MeetupID: row.MeetupID,
			StartsAt: pgconv.TimeFromPgtype(row.StartsAt),
		}
	}
	return result, nil
}

// FindActiveByUser returns upcoming subscriptions in chronological order.
func (s *SubscriptionReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.SubscriptionView, error) {
	rows, err := s.queries.ListActiveSubscriptionsByUser(ctx, s.db, sqlc.ListActiveSubscriptionsByUserParams{
		UserID:   userID,
		StartsAt: pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active subscriptions", err)
	}

	result := make([]*queries.SubscriptionView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SubscriptionView{
			ID:             row.ID,
			MeetupID:       row.MeetupID,
			MeetupTitle:    row.MeetupTitle,
			MeetupLocation: row.MeetupLocation,
			OrganizerName:  row.OrganizerName,
			StartsAt:       pgconv.TimeFromPgtype(row.StartsAt),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (s *SubscriptionReadStore) FindByUserAndMeetup(ctx context.Context, userID, meetupID uuid.UUID) (*queries.SubscriptionView, error) {
	row, err := s.queries.GetSubscriptionByUserAndMeetup(ctx, s.db, sqlc.GetSubscriptionByUserAndMeetupParams{
		UserID:   userID,
		MeetupID: meetupID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return &queries.SubscriptionView{
		ID:        row.ID,
		MeetupID:  row.MeetupID,
		StartsAt:  pgconv.TimeFromPgtype(row.StartsAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
