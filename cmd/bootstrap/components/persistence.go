package components

import (
	"log/slog"

	"tutor-scheduling/internal/infra/cache"
	"tutor-scheduling/internal/infra/readstore"
	sqlc "tutor-scheduling/internal/infra/sqlc/generated"
	"tutor-scheduling/internal/infra/uow"
	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
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
		// Window
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WindowReadQueries)),
		),
		readstore.NewWindowReadStore,
		NewWindowSource,
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingLookup)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the window and booking repositories per transaction
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewWindowSource puts the Redis cache in front of Postgres when a client is configured.
func NewWindowSource(
	store *readstore.WindowReadStore,
	client *redis.Client,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) shared.WindowSource {
	if client == nil {
		return store
	}
	return cache.NewWindowSource(store, cache.NewRedisStore(client), cfg.Redis.WindowTTL, m, logger)
}
