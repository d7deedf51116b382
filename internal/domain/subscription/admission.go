package subscription

import (
	"time"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOwnMeetup         = errs.New("cannot subscribe to own meetup")
	ErrPastMeetup        = errs.New("cannot subscribe to a meetup that already happened")
	ErrAlreadySubscribed = errs.New("already subscribed to this meetup")
	ErrTimeConflict      = errs.New("already subscribed to a meetup at the same time")
)

type Decision int

const (
	Accepted Decision = iota
	RejectedOwnMeetup
	RejectedPastMeetup
	RejectedDuplicate
	RejectedTimeConflict
)

// Existing is one committed subscription of the requesting user, the
// minimal shape the admission rules need.
type Existing struct {
	MeetupID uuid.UUID
	StartsAt time.Time
}

// Decide applies the admission rules in a fixed order; the first rule
// that matches determines the rejection the user sees. A self-subscription
// to a past, already-conflicting meetup must always report the own-meetup
// rejection, so the order is part of the contract, not an accident.
//
// Decide is pure: committing the outcome (and losing constraint races)
// is the caller's concern.
func Decide(requesterID uuid.UUID, target meetup.Snapshot, existing []Existing, now time.Time) Decision {
	if requesterID == target.OwnerID {
		return RejectedOwnMeetup
	}
	if target.HappenedBy(now) {
		return RejectedPastMeetup
	}
	for _, sub := range existing {
		if sub.MeetupID == target.ID {
			return RejectedDuplicate
		}
	}
	for _, sub := range existing {
		// Exact instant, not same day
		if sub.StartsAt.Equal(target.StartsAt) {
			return RejectedTimeConflict
		}
	}
	return Accepted
}

func (d Decision) Accepted() bool {
	return d == Accepted
}

// Err maps a rejection to its sentinel error; Accepted maps to nil.
func (d Decision) Err() error {
	switch d {
	case RejectedOwnMeetup:
		return ErrOwnMeetup
	case RejectedPastMeetup:
		return ErrPastMeetup
	case RejectedDuplicate:
		return ErrAlreadySubscribed
	case RejectedTimeConflict:
		return ErrTimeConflict
	default:
		return nil
	}
}

func (d Decision) String() string {
	switch d {
	case Accepted:
		return "accepted"
	case RejectedOwnMeetup:
		return "rejected_own_meetup"
	case RejectedPastMeetup:
		return "rejected_past_meetup"
	case RejectedDuplicate:
		return "rejected_duplicate"
	case RejectedTimeConflict:
		return "rejected_time_conflict"
	default:
		return "unknown"
	}
}
