package components

import (
	"cashdrawer-api/internal/infra/pgsql"
	"cashdrawer-api/internal/infra/readstore"
	"cashdrawer-api/internal/infra/uow"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the unit of work,
// so only the unit of work and the read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// CashDrawer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CashDrawerReadQueries)),
		),
		fx.Annotate(
			readstore.NewCashDrawerReadStore,
			fx.As(new(queries.CashDrawerReadStore)),
		),
		// CashTransaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CashTransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewCashTransactionReadStore,
			fx.As(new(queries.CashTransactionReadStore)),
		),
		// DrawerHistory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DrawerHistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewDrawerHistoryReadStore,
			fx.As(new(queries.DrawerHistoryReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
