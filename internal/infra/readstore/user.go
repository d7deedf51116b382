package readstore

import (
	"context"

	"meetup-api/internal/infra"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/pkg/pgconv"
	"meetup-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries *sqlc.Queries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := s.queries.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Name:     row.Name,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
