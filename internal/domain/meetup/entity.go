package meetup

import (
	"time"

	"meetup-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPastStartsAt     = errs.New("meetup cannot start in the past")
	ErrAlreadyHappened  = errs.New("meetup already happened")
	ErrNotOwner         = errs.New("meetup is not owned by user")
	ErrEmptyTitle       = errs.New("title cannot be empty")
	ErrTitleTooLong     = errs.New("title exceeds maximum length")
	ErrEmptyLocation    = errs.New("location cannot be empty")
	ErrEmptyDescription = errs.New("description cannot be empty")
)

// Meetup entity. starts_at is an exact instant (timezone-normalized by
// the storage layer); same-day meetups at different times do not clash.
type Meetup struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       Title
	description string
	location    string
	startsAt    time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewMeetup validates the owner-facing creation rules: content present,
// start strictly in the future at creation time.
func NewMeetup(ownerID uuid.UUID, title Title, description, location string, startsAt, now time.Time) (*Meetup, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if !startsAt.After(now) {
		return nil, ErrPastStartsAt
	}

	return &Meetup{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		location:    location,
		startsAt:    startsAt,
	}, nil
}

func (m *Meetup) ID() uuid.UUID       { return m.id }
func (m *Meetup) OwnerID() uuid.UUID  { return m.ownerID }
func (m *Meetup) Title() Title        { return m.title }
func (m *Meetup) Description() string { return m.description }
func (m *Meetup) Location() string    { return m.location }
func (m *Meetup) StartsAt() time.Time { return m.startsAt }
func (m *Meetup) CreatedAt() time.Time { return m.createdAt }
func (m *Meetup) UpdatedAt() time.Time { return m.updatedAt }

// Snapshot is the read-side shape consumed by mutation guards and the
// admission engine. Owner mutations and subscriptions both key off the
// same two facts: who owns the meetup, and whether it already started.
type Snapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	StartsAt time.Time
}

func (s Snapshot) HappenedBy(now time.Time) bool {
	return !s.StartsAt.After(now)
}

// CanMutate guards update and delete: owner only, and never after the
// meetup has started.
func (s Snapshot) CanMutate(actorID uuid.UUID, now time.Time) error {
	if s.HappenedBy(now) {
		return ErrAlreadyHappened
	}
	if s.OwnerID != actorID {
		return ErrNotOwner
	}
	return nil
}
