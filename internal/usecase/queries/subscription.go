package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meetup-api/internal/infra"
	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/errs"
)

var ErrSubscriptionNotFound = errs.New("subscription not found")

type SubscriptionQueries interface {
	// ListActive returns the caller's upcoming subscriptions, soonest first.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*SubscriptionView, error)
	GetByUserAndMeetup(ctx context.Context, userID, meetupID uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionReadStore interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*SubscriptionView, error)
	FindByUserAndMeetup(ctx context.Context, userID, meetupID uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	readStore SubscriptionReadStore
	clock     clock.Clock
}

func NewSubscriptionQueries(readStore SubscriptionReadStore, clk clock.Clock) SubscriptionQueries {
	return &subscriptionQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *subscriptionQueriesImpl) ListActive(ctx context.Context, userID uuid.UUID) ([]*SubscriptionView, error) {
	return q.readStore.FindActiveByUser(ctx, userID, q.clock.Now())
}

func (q *subscriptionQueriesImpl) GetByUserAndMeetup(ctx context.Context, userID, meetupID uuid.UUID) (*SubscriptionView, error) {
	view, err := q.readStore.FindByUserAndMeetup(ctx, userID, meetupID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return view, nil
}
