package repository

import (
	"context"

	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
