package readstore

import (
	"context"
	"time"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/pkg/pgconv"
	"meetup-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MeetupReadQueries interface {
	GetMeetupByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetMeetupByIDRow, error)
	ListMeetups(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMeetupsParams) ([]sqlc.ListMeetupsRow, error)
	ListMeetupsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMeetupsBetweenParams) ([]sqlc.ListMeetupsBetweenRow, error)
}

type MeetupReadStore struct {
	queries MeetupReadQueries
	db      sqlc.DBTX
}

func NewMeetupReadStore(queries *sqlc.Queries, db sqlc.DBTX) *MeetupReadStore {
	return &MeetupReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *MeetupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MeetupView, error) {
	row, err := s.queries.GetMeetupByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meetup not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meetup by id", err)
	}
	return &queries.MeetupView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		Title:       row.Title,
		Description: row.Description,
		Location:    row.Location,
		StartsAt:    pgconv.TimeFromPgtype(row.StartsAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// SnapshotByID returns the minimal shape the command side needs for
// ownership and past-start checks, with the organizer contact attached.
func (s *MeetupReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*meetup.Snapshot, *OrganizerContact, error) {
	row, err := s.queries.GetMeetupByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("meetup not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find meetup by id", err)
	}

	snapshot := &meetup.Snapshot{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Title:    row.Title,
		StartsAt: pgconv.TimeFromPgtype(row.StartsAt),
	}
	contact := &OrganizerContact{
		Name:  row.OwnerName,
		Email: row.OwnerEmail,
	}
	return snapshot, contact, nil
}

// OrganizerContact is who the acceptance notification goes to.
type OrganizerContact struct {
	Name  string
	Email string
}

func (s *MeetupReadStore) List(ctx context.Context, limit, offset int32) ([]*queries.MeetupView, error) {
	rows, err := s.queries.ListMeetups(ctx, s.db, sqlc.ListMeetupsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetups", err)
	}

	result := make([]*queries.MeetupView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MeetupView{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			OwnerName:   row.OwnerName,
			Title:       row.Title,
			Description: row.Description,
			Location:    row.Location,
			StartsAt:    pgconv.TimeFromPgtype(row.StartsAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// ListOn returns the meetups starting within the given day, in the
// location of t.
func (s *MeetupReadStore) ListOn(ctx context.Context, day time.Time, limit, offset int32) ([]*queries.MeetupView, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	rows, err := s.queries.ListMeetupsBetween(ctx, s.db, sqlc.ListMeetupsBetweenParams{
		StartsAt:   pgtype.Timestamptz{Time: from, Valid: true},
		StartsAt_2: pgtype.Timestamptz{Time: to, Valid: true},
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetups by date", err)
	}

	result := make([]*queries.MeetupView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MeetupView{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			OwnerName:   row.OwnerName,
			Title:       row.Title,
			Description: row.Description,
			Location:    row.Location,
			StartsAt:    pgconv.TimeFromPgtype(row.StartsAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
