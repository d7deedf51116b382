package shared

import (
	"context"
	"time"

	"meetup-api/internal/domain/meetup"
	"meetup-api/internal/domain/subscription"
	sqlc "meetup-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Meetups() MeetupRepository
	Subscriptions() SubscriptionRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	MeetupByID(ctx context.Context, id uuid.UUID) (*meetup.Snapshot, error)
	SubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]subscription.Existing, error)
}

type MeetupRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *meetup.Meetup) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, m *meetup.Meetup) error
	Delete(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, sub *subscription.Subscription) (uuid.UUID, error)
	SyncMeetupStartsAt(ctx context.Context, tx sqlc.DBTX, meetupID uuid.UUID, startsAt time.Time) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, userID, meetupID uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
