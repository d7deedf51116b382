//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetup-api/internal/domain/subscription"
	"meetup-api/internal/infra"
	"meetup-api/internal/infra/repository"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	repositorymock "meetup-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Subscription Tests
// =============================================================================

func TestSubscriptionRepository_Create(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSubscriptionWriteQueries, *subscription.Subscription, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: subscription inserted",
			setupMock: func(mock *repositorymock.MockSubscriptionWriteQueries, sub *subscription.Subscription, tx sqlc.DBTX) {
				mock.EXPECT().CreateSubscription(ctx, tx, gomock.Any()).
					Return(sqlc.Subscriptions{ID: sub.ID()}, nil)
			},
		},
		{
			name: "error: duplicate (user, meetup) race translated to DUPLICATE_KEY",
			setupMock: func(mock *repositorymock.MockSubscriptionWriteQueries, sub *subscription.Subscription, tx sqlc.DBTX) {
				dup := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "subscriptions_user_meetup_key",
					Message:        "duplicate key value violates unique constraint",
				}
				mock.EXPECT().CreateSubscription(ctx, tx, gomock.Any()).Return(sqlc.Subscriptions{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: (user, slot) race translated to CONFLICT",
			setupMock: func(mock *repositorymock.MockSubscriptionWriteQueries, sub *subscription.Subscription, tx sqlc.DBTX) {
				slot := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "subscriptions_user_slot_key",
					Message:        "duplicate key value violates unique constraint",
				}
				mock.EXPECT().CreateSubscription(ctx, tx, gomock.Any()).Return(sqlc.Subscriptions{}, slot)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: plain database failure stays DB_FAILURE",
			setupMock: func(mock *repositorymock.MockSubscriptionWriteQueries, sub *subscription.Subscription, tx sqlc.DBTX) {
				mock.EXPECT().CreateSubscription(ctx, tx, gomock.Any()).
					Return(sqlc.Subscriptions{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSubscriptionRepository(mockQueries)

			sub := subscription.NewSubscription(uuid.New(), uuid.New(), startsAt)
			tc.setupMock(mockQueries, sub, mockDB)

			subID, actualError := repo.Create(ctx, mockDB, sub)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, subID)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, sub.ID(), subID)
			}
		})
	}
}

// =============================================================================
// Delete Subscription Tests
// =============================================================================

func TestSubscriptionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reports affected rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		mockQueries.EXPECT().DeleteSubscriptionByUserAndMeetup(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		affected, err := repo.Delete(ctx, mockDB, uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("success: zero rows is not an error at this layer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		mockQueries.EXPECT().DeleteSubscriptionByUserAndMeetup(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		affected, err := repo.Delete(ctx, mockDB, uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		mockQueries.EXPECT().DeleteSubscriptionByUserAndMeetup(ctx, mockDB, gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := repo.Delete(ctx, mockDB, uuid.New(), uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Sync Slot Instant Tests
// =============================================================================

func TestSubscriptionRepository_SyncMeetupStartsAt(t *testing.T) {
	ctx := context.Background()
	newStart := time.Date(2026, 3, 21, 19, 0, 0, 0, time.UTC)

	t.Run("success: rewrites every subscription of the meetup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		meetupID := uuid.New()
		mockQueries.EXPECT().SyncSubscriptionStartsAt(ctx, mockDB, sqlc.SyncSubscriptionStartsAtParams{
			MeetupID: meetupID,
			StartsAt: pgtype.Timestamptz{Time: newStart, Valid: true},
		}).Return(int64(3), nil)

		affected, err := repo.SyncMeetupStartsAt(ctx, mockDB, meetupID, newStart)
		require.NoError(t, err)
		assert.Equal(t, int64(3), affected)
	})

	t.Run("error: subscriber holding the new slot translated to CONFLICT", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		slot := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "subscriptions_user_slot_key",
			Message:        "duplicate key value violates unique constraint",
		}
		mockQueries.EXPECT().SyncSubscriptionStartsAt(ctx, mockDB, gomock.Any()).Return(int64(0), slot)

		_, err := repo.SyncMeetupStartsAt(ctx, mockDB, uuid.New(), newStart)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("error: plain database failure stays DB_FAILURE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockSubscriptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSubscriptionRepository(mockQueries)

		mockQueries.EXPECT().SyncSubscriptionStartsAt(ctx, mockDB, gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		_, err := repo.SyncMeetupStartsAt(ctx, mockDB, uuid.New(), newStart)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(_ context.Context, _ string, _ ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(_ context.Context, _ string, _ ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row {
	return nil
}
