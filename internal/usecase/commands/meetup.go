package commands

import (
	"context"

	"github.com/google/uuid"

	"meetup-api/internal/infra"
	reqdto "meetup-api/internal/handler/dto/request"
	"meetup-api/internal/pkg/clock"
	"meetup-api/internal/pkg/errs"
	"meetup-api/internal/usecase/queries"
	"meetup-api/internal/usecase/shared"
)

var (
	ErrDomainValidation = errs.New("domain validation error")

	// ErrRescheduleConflict: moving the meetup would give a subscriber
	// two subscriptions at the same instant.
	ErrRescheduleConflict = errs.New("reschedule conflicts with a subscriber's slot")
)

type CreateMeetupResult struct {
	Meetup *queries.MeetupView
}

type MeetupCommands interface {
	Create(ctx context.Context, req reqdto.CreateMeetupRequest, ownerID uuid.UUID) (*CreateMeetupResult, error)
	Update(ctx context.Context, meetupID uuid.UUID, req reqdto.UpdateMeetupRequest, actorID uuid.UUID) error
	Delete(ctx context.Context, meetupID uuid.UUID, actorID uuid.UUID) error
}

type meetupCommandsImpl struct {
	uow           shared.UnitOfWork
	meetupQueries queries.MeetupQueries
	clock         clock.Clock
}

func NewMeetupCommands(uow shared.UnitOfWork, meetupQueries queries.MeetupQueries, clk clock.Clock) MeetupCommands {
	return &meetupCommandsImpl{
		uow:           uow,
		meetupQueries: meetupQueries,
		clock:         clk,
	}
}

func (m *meetupCommandsImpl) Create(ctx context.Context, req reqdto.CreateMeetupRequest, ownerID uuid.UUID) (*CreateMeetupResult, error) {
	entity, err := req.ToDomain(ownerID, m.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Meetups().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := m.meetupQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateMeetupResult{Meetup: view}, nil
}

// Update rewrites the meetup content. Owner only, and never once the
// meetup has started; the replacement start must also be in the future.
func (m *meetupCommandsImpl) Update(ctx context.Context, meetupID uuid.UUID, req reqdto.UpdateMeetupRequest, actorID uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MeetupByID(ctx, meetupID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMeetupNotFound
			}
			return err
		}

		if err := snap.CanMutate(actorID, m.clock.Now()); err != nil {
			return err
		}

		entity, err := req.ToDomain(snap.OwnerID, m.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Meetups().Update(ctx, tx.DB(), meetupID, entity); err != nil {
			return err
		}

		// The ledger denormalizes starts_at, so a reschedule must carry
		// every subscription along or the slot uniqueness and conflict
		// checks compare stale instants.
		if !entity.StartsAt().Equal(snap.StartsAt) {
			if _, err := tx.Subscriptions().SyncMeetupStartsAt(ctx, tx.DB(), meetupID, entity.StartsAt()); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrRescheduleConflict
				}
				return err
			}
		}
		return nil
	})
}

func (m *meetupCommandsImpl) Delete(ctx context.Context, meetupID uuid.UUID, actorID uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().MeetupByID(ctx, meetupID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMeetupNotFound
			}
			return err
		}

		if err := snap.CanMutate(actorID, m.clock.Now()); err != nil {
			return err
		}

		return tx.Meetups().Delete(ctx, tx.DB(), meetupID)
	})
}
