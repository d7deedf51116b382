package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meetup-api/internal/infra"
	"meetup-api/internal/pkg/errs"
)

var ErrMeetupNotFound = errs.New("meetup not found")

// Fixed page size for meetup listings.
const MeetupPageSize = 10

type MeetupQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MeetupView, error)
	List(ctx context.Context, date *time.Time, page int32) ([]*MeetupView, error)
}

type MeetupReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MeetupView, error)
	List(ctx context.Context, limit, offset int32) ([]*MeetupView, error)
	ListOn(ctx context.Context, day time.Time, limit, offset int32) ([]*MeetupView, error)
}

type meetupQueriesImpl struct {
	readStore MeetupReadStore
}

func NewMeetupQueries(readStore MeetupReadStore) MeetupQueries {
	return &meetupQueriesImpl{
		readStore: readStore,
	}
}

func (q *meetupQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MeetupView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetupNotFound
		}
		return nil, err
	}
	return view, nil
}

// List returns one page of meetups in starting order. When date is set
// only meetups within that calendar day are returned.
func (q *meetupQueriesImpl) List(ctx context.Context, date *time.Time, page int32) ([]*MeetupView, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * MeetupPageSize

	if date != nil {
		return q.readStore.ListOn(ctx, *date, MeetupPageSize, offset)
	}
	return q.readStore.List(ctx, MeetupPageSize, offset)
}
