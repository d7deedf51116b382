//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"meetup-api/internal/infra"
	"meetup-api/internal/infra/repository"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/tests/common/builder"
	repositorymock "meetup-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMeetupRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the inserted id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMeetupWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMeetupRepository(mockQueries)

		entity, err := builder.NewMeetupBuilder().BuildDomain()
		require.NoError(t, err)

		want := uuid.New()
		mockQueries.EXPECT().CreateMeetup(ctx, mockDB, gomock.Any()).Return(sqlc.Meetups{ID: want}, nil)

		got, err := repo.Create(ctx, mockDB, entity)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMeetupWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMeetupRepository(mockQueries)

		entity, err := builder.NewMeetupBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateMeetup(ctx, mockDB, gomock.Any()).
			Return(sqlc.Meetups{}, errors.New("connection reset"))

		_, err = repo.Create(ctx, mockDB, entity)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestMeetupRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMeetupWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMeetupRepository(mockQueries)

		entity, err := builder.NewMeetupBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().UpdateMeetup(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, repo.Update(ctx, mockDB, uuid.New(), entity))
	})

	t.Run("error: zero rows surfaces NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMeetupWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMeetupRepository(mockQueries)

		entity, err := builder.NewMeetupBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().UpdateMeetup(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err = repo.Update(ctx, mockDB, uuid.New(), entity)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMeetupRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("error: zero rows surfaces NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMeetupWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMeetupRepository(mockQueries)

		mockQueries.EXPECT().DeleteMeetup(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.Delete(ctx, mockDB, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
