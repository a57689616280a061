package components

import (
	"foodshare/internal/pkg/clock"
	"foodshare/internal/usecase"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

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
		commands.NewAuthCommands,
		commands.NewListingCommands,
		commands.NewClaimCommands,
		commands.NewProfileCommands,
		commands.NewIdempotencyJanitor,
	),
	fx.Invoke(registerJanitor),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func registerJanitor(lc fx.Lifecycle, j *commands.IdempotencyJanitor) {
	lc.Append(fx.StartStopHook(j.Start, j.Stop))
}
