package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is an accepted (user, meetup) fact. StartsAt duplicates
// the meetup instant so the ledger can enforce temporal exclusivity
// with a plain unique index.
type Subscription struct {
	id        uuid.UUID
	userID    uuid.UUID
	meetupID  uuid.UUID
	startsAt  time.Time
	createdAt time.Time
}

func NewSubscription(userID, meetupID uuid.UUID, startsAt time.Time) *Subscription {
	return &Subscription{
		id:       uuid.New(),
		userID:   userID,
		meetupID: meetupID,
		startsAt: startsAt,
	}
}

func (s *Subscription) ID() uuid.UUID        { return s.id }
func (s *Subscription) UserID() uuid.UUID    { return s.userID }
func (s *Subscription) MeetupID() uuid.UUID  { return s.meetupID }
func (s *Subscription) StartsAt() time.Time  { return s.startsAt }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
