//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

func futureMeetup(ownerID uuid.UUID, startsAt time.Time) meetup.Snapshot {
	return meetup.Snapshot{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Title:    "Go Night Tokyo",
		StartsAt: startsAt,
	}
}

func TestDecide(t *testing.T) {
	requester := uuid.New()
	organizer := uuid.New()
	now := baseTime

	t.Run("accepts a plain future meetup", func(t *testing.T) {
		target := futureMeetup(organizer, now.Add(24*time.Hour))

		decision := subscription.Decide(requester, target, nil, now)

		assert.Equal(t, subscription.Accepted, decision)
		assert.True(t, decision.Accepted())
		assert.NoError(t, decision.Err())
	})

	t.Run("rejects the requester's own meetup", func(t *testing.T) {
		target := futureMeetup(requester, now.Add(24*time.Hour))

		decision := subscription.Decide(requester, target, nil, now)

		assert.Equal(t, subscription.RejectedOwnMeetup, decision)
		assert.ErrorIs(t, decision.Err(), subscription.ErrOwnMeetup)
	})

	t.Run("rejects a meetup that already happened", func(t *testing.T) {
		target := futureMeetup(organizer, now.Add(-1*time.Hour))

		decision := subscription.Decide(requester, target, nil, now)

		assert.Equal(t, subscription.RejectedPastMeetup, decision)
		assert.ErrorIs(t, decision.Err(), subscription.ErrPastMeetup)
	})

	t.Run("a meetup starting exactly now counts as happened", func(t *testing.T) {
		target := futureMeetup(organizer, now)

		decision := subscription.Decide(requester, target, nil, now)

		assert.Equal(t, subscription.RejectedPastMeetup, decision)
	})

	t.Run("rejects a duplicate subscription", func(t *testing.T) {
		target := futureMeetup(organizer, now.Add(24*time.Hour))
		existing := []subscription.Existing{
			{MeetupID: target.ID, StartsAt: target.StartsAt},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedDuplicate, decision)
		assert.ErrorIs(t, decision.Err(), subscription.ErrAlreadySubscribed)
	})

	t.Run("rejects a subscription at the exact same instant", func(t *testing.T) {
		startsAt := now.Add(24 * time.Hour)
		target := futureMeetup(organizer, startsAt)
		existing := []subscription.Existing{
			{MeetupID: uuid.New(), StartsAt: startsAt},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedTimeConflict, decision)
		assert.ErrorIs(t, decision.Err(), subscription.ErrTimeConflict)
	})

	t.Run("same instant in a different zone representation still conflicts", func(t *testing.T) {
		startsAt := now.Add(24 * time.Hour)
		jst := time.FixedZone("JST", 9*60*60)
		target := futureMeetup(organizer, startsAt)
		existing := []subscription.Existing{
			{MeetupID: uuid.New(), StartsAt: startsAt.In(jst)},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedTimeConflict, decision)
	})

	t.Run("same day at a different time does not conflict", func(t *testing.T) {
		target := futureMeetup(organizer, now.Add(24*time.Hour))
		existing := []subscription.Existing{
			{MeetupID: uuid.New(), StartsAt: now.Add(26 * time.Hour)},
			{MeetupID: uuid.New(), StartsAt: now.Add(22 * time.Hour)},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.Accepted, decision)
	})
}

// The rejection order is part of the contract: a request can trip several
// rules at once and the user must always see the first one.
func TestDecide_RuleOrder(t *testing.T) {
	requester := uuid.New()
	organizer := uuid.New()
	now := baseTime

	t.Run("own meetup wins over past", func(t *testing.T) {
		target := futureMeetup(requester, now.Add(-1*time.Hour))

		decision := subscription.Decide(requester, target, nil, now)

		assert.Equal(t, subscription.RejectedOwnMeetup, decision)
	})

	t.Run("own meetup wins over duplicate and conflict", func(t *testing.T) {
		target := futureMeetup(requester, now.Add(24*time.Hour))
		existing := []subscription.Existing{
			{MeetupID: target.ID, StartsAt: target.StartsAt},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedOwnMeetup, decision)
	})

	t.Run("past wins over duplicate", func(t *testing.T) {
		target := futureMeetup(organizer, now.Add(-1*time.Hour))
		existing := []subscription.Existing{
			{MeetupID: target.ID, StartsAt: target.StartsAt},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedPastMeetup, decision)
	})

	t.Run("duplicate wins over time conflict", func(t *testing.T) {
		startsAt := now.Add(24 * time.Hour)
		target := futureMeetup(organizer, startsAt)
		existing := []subscription.Existing{
			// Another meetup at the same instant listed first; the
			// duplicate of the target itself must still win.
			{MeetupID: uuid.New(), StartsAt: startsAt},
			{MeetupID: target.ID, StartsAt: startsAt},
		}

		decision := subscription.Decide(requester, target, existing, now)

		assert.Equal(t, subscription.RejectedDuplicate, decision)
	})
}

func TestDecision_String(t *testing.T) {
	cases := map[subscription.Decision]string{
		subscription.Accepted:             "accepted",
		subscription.RejectedOwnMeetup:    "rejected_own_meetup",
		subscription.RejectedPastMeetup:   "rejected_past_meetup",
		subscription.RejectedDuplicate:    "rejected_duplicate",
		subscription.RejectedTimeConflict: "rejected_time_conflict",
	}
	for decision, want := range cases {
		assert.Equal(t, want, decision.String())
	}
}

func TestNewSubscription(t *testing.T) {
	userID := uuid.New()
	meetupID := uuid.New()
	startsAt := baseTime.Add(24 * time.Hour)

	sub1 := subscription.NewSubscription(userID, meetupID, startsAt)
	sub2 := subscription.NewSubscription(userID, meetupID, startsAt)

	require.NotNil(t, sub1)
	assert.Equal(t, userID, sub1.UserID())
	assert.Equal(t, meetupID, sub1.MeetupID())
	assert.True(t, startsAt.Equal(sub1.StartsAt()))
	assert.NotEqual(t, sub1.ID(), sub2.ID())
}
