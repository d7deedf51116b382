package components

import (
	"meetup-api/internal/infra/readstore"
	sqlc "meetup-api/internal/infra/sqlc/generated"
	"meetup-api/internal/infra/uow"
	"meetup-api/internal/usecase/commands"
	"meetup-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Meetup
		fx.Annotate(
			readstore.NewMeetupReadStore,
			fx.As(new(queries.MeetupReadStore)),
			fx.As(new(commands.MeetupSnapshotReads)),
		),
		// Subscription
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationJobReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Write-side repositories are built lazily inside the unit of work,
		// so only the UoW itself is wired here.
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
