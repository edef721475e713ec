package components

import (
	"hotel-voucher-api/internal/infra/db"
	"hotel-voucher-api/internal/infra/readstore"
	"hotel-voucher-api/internal/infra/uow"
	"hotel-voucher-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; repositories are
		// constructed per transaction inside it.
		uow.NewPostgresUoW,
		// Read side
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		fx.Annotate(
			readstore.NewSyncLogReadStore,
			fx.As(new(queries.SyncLogReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
