package repository

import (
	"context"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MeetupWriteQueries interface {
	CreateMeetup(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMeetupParams) (sqlc.Meetups, error)
	UpdateMeetup(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMeetupParams) (int64, error)
	DeleteMeetup(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type MeetupRepository struct {
	queries MeetupWriteQueries
}

func NewMeetupRepository(queries MeetupWriteQueries) *MeetupRepository {
	return &MeetupRepository{
		queries: queries,
	}
}

func (r *MeetupRepository) Create(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) (uuid.UUID, error) {
	params := sqlc.CreateMeetupParams{
		OwnerID:     m.OwnerID(),
		Title:       m.Title().Value(),
		Description: m.Description(),
		Location:    m.Location(),
		StartsAt:    pgtype.Timestamptz{Time: m.StartsAt(), Valid: true},
	}

	row, err := r.queries.CreateMeetup(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create meetup", err)
	}
	return row.ID, nil
}

func (r *MeetupRepository) Update(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, m *meetup.Meetup) error {
	params := sqlc.UpdateMeetupParams{
		ID:          meetupID,
		Title:       m.Title().Value(),
		Description: m.Description(),
		Location:    m.Location(),
		StartsAt:    pgtype.Timestamptz{Time: m.StartsAt(), Valid: true},
	}

	affected, err := r.queries.UpdateMeetup(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update meetup", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("meetup not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MeetupRepository) Delete(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID) error {
	affected, err := r.queries.DeleteMeetup(ctx, tx, meetupID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete meetup", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("meetup not found", nil, infra.KindNotFound)
	}
	return nil
}
