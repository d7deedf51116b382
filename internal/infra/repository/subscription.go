package repository

import (
	"context"
	"time"

	"meetup-api/internal/domain/subscription"
	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Constraint names from db/schema.sql. Insert races resolve through
// these rather than through a read-then-write check.
const (
	constraintUserMeetup = "subscriptions_user_meetup_key"
	constraintUserSlot   = "subscriptions_user_slot_key"
)

type SubscriptionWriteQueries interface {
	CreateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriptionParams) (sqlc.Subscriptions, error)
	SyncSubscriptionStartsAt(ctx context.Context, db sqlc.DBTX, arg sqlc.SyncSubscriptionStartsAtParams) (int64, error)
	DeleteSubscriptionByUserAndMeetup(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteSubscriptionByUserAndMeetupParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
	}
}

// Create inserts the subscription and maps unique violations to their
// admission meaning: the (user, meetup) key means a duplicate, the
// (user, slot) key means another subscription holds the same instant.
func (r *SubscriptionRepository) Create(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) (uuid.UUID, error) {
	params := sqlc.CreateSubscriptionParams{
		UserID:   sub.UserID(),
		MeetupID: sub.MeetupID(),
		StartsAt: pgtype.Timestamptz{Time: sub.StartsAt(), Valid: true},
	}

	row, err := r.queries.CreateSubscription(ctx, tx, params)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create subscription", err)
		switch infra.ConstraintOf(wrapped) {
		case constraintUserMeetup:
			return uuid.Nil, infra.WrapRepoErr("subscription already exists", err, infra.KindDuplicateKey)
		case constraintUserSlot:
			return uuid.Nil, infra.WrapRepoErr("subscription slot already taken", err, infra.KindConflict)
		}
		return uuid.Nil, wrapped
	}
	return row.ID, nil
}

// SyncMeetupStartsAt rewrites the denormalized slot instant on every
// subscription of the meetup. Runs in the same transaction as the meetup
// update; a (user, slot) violation means a subscriber already holds the
// new instant through another meetup.
func (r *SubscriptionRepository) SyncMeetupStartsAt(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, startsAt time.Time) (int64, error) {
	params := sqlc.SyncSubscriptionStartsAtParams{
		MeetupID: meetupID,
		StartsAt: pgtype.Timestamptz{Time: startsAt, Valid: true},
	}

	affected, err := r.queries.SyncSubscriptionStartsAt(ctx, tx, params)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to sync subscription slots", err)
		if infra.ConstraintOf(wrapped) == constraintUserSlot {
			return 0, infra.WrapRepoErr("subscriber slot already taken at new time", err, infra.KindConflict)
		}
		return 0, wrapped
	}
	return affected, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID, meetupID uuid.UUID) (int64, error) {
	params := sqlc.DeleteSubscriptionByUserAndMeetupParams{
		UserID:   userID,
		MeetupID: meetupID,
	}

	affected, err := r.queries.DeleteSubscriptionByUserAndMeetup(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete subscription", err)
	}
	return affected, nil
}
