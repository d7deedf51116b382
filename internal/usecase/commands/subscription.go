package commands

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/domain/subscription"
	"meetup-api/internal/infra"
	"meetup-api/internal/infra/readstore"
	"meetup-api/internal/notification"
	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/errs"
	"meetup-api/internal/usecase/queries"
	"meetup-api/internal/usecase/shared"
)

var (
	ErrMeetupNotFound          = errs.New("meetup not found")
	ErrSubscriptionNotFound    = errs.New("subscription not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SubscribeResult struct {
	Subscription *queries.SubscriptionView
}

// MeetupSnapshotReads loads the admission target together with the
// organizer contact for the notification payload.
type MeetupSnapshotReads interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*meetup.Snapshot, *readstore.OrganizerContact, error)
}

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, userID, meetupID uuid.UUID) (*SubscribeResult, error)
	Unsubscribe(ctx context.Context, userID, meetupID uuid.UUID) error
}

type subscriptionCommandsImpl struct {
	uow         shared.UnitOfWork
	meetupReads MeetupSnapshotReads
	userStore   queries.UserReadStore
	subQueries  queries.SubscriptionQueries
	clock       clock.Clock
}

func NewSubscriptionCommands(
	uow shared.UnitOfWork,
	meetupReads MeetupSnapshotReads,
	userStore queries.UserReadStore,
	subQueries queries.SubscriptionQueries,
	clk clock.Clock,
) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		uow:         uow,
		meetupReads: meetupReads,
		userStore:   userStore,
		subQueries:  subQueries,
		clock:       clk,
	}
}

// Subscribe runs the admission rules against the caller's committed
// subscriptions and, when accepted, inserts the ledger row and enqueues
// the organizer notification in one transaction. Unique-constraint
// losers of concurrent races are translated back to the same rejections
// the rules would have produced.
func (s *subscriptionCommandsImpl) Subscribe(ctx context.Context, userID, meetupID uuid.UUID) (*SubscribeResult, error) {
	target, organizer, err := s.meetupReads.SnapshotByID(ctx, meetupID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetupNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	subscriber, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().SubscriptionsByUser(ctx, userID)
		if derr != nil {
			return derr
		}

		if decision := subscription.Decide(userID, *target, existing, s.clock.Now()); !decision.Accepted() {
			return decision.Err()
		}

		sub := subscription.NewSubscription(userID, meetupID, target.StartsAt)
		id, derr := tx.Subscriptions().Create(ctx, tx.DB(), sub)
		if derr != nil {
			return derr
		}
		payload, derr := json.Marshal(notification.SubscriptionCreatedPayload{
			SubscriptionID:  id,
			MeetupID:        meetupID,
			MeetupTitle:     target.Title,
			StartsAt:        target.StartsAt,
			OrganizerName:   organizer.Name,
			OrganizerEmail:  organizer.Email,
			SubscriberName:  subscriber.Name,
			SubscriberEmail: subscriber.Email,
		})
		if derr != nil {
			return derr
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), notification.KindEmail, notification.TopicSubscriptionCreated, payload, s.clock.Now())
	})
	if err != nil {
		// A racing insert loses to one of the unique constraints; the
		// outcome is the same rejection the rules give the slow path.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, subscription.ErrAlreadySubscribed
		}
		if infra.IsKind(err, infra.KindConflict) {
			return nil, subscription.ErrTimeConflict
		}
		return nil, err
	}

	// Read-after-write: return the joined view of what was committed
	view, err := s.subQueries.GetByUserAndMeetup(ctx, userID, meetupID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &SubscribeResult{Subscription: view}, nil
}

func (s *subscriptionCommandsImpl) Unsubscribe(ctx context.Context, userID, meetupID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Subscriptions().Delete(ctx, tx.DB(), userID, meetupID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrSubscriptionNotFound
		}
		return nil
	})
}
