package components

import (
	"cashdrawer-api/internal/pkg/clock"
	"cashdrawer-api/internal/usecase"
	"cashdrawer-api/internal/usecase/commands"
	"cashdrawer-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCashDrawerCommands,
		// The archive serves both the history endpoints and the CLOSE path of the ledger.
		fx.Annotate(
			commands.NewHistoryArchive,
			fx.As(new(commands.DrawerHistoryCommands)),
			fx.As(new(commands.SessionArchiver)),
		),
		commands.NewCashTransactionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCashDrawerQueries,
		queries.NewCashTransactionQueries,
		queries.NewDrawerHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
