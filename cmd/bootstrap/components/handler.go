package components

import (
	"foodshare/internal/handler"
	"foodshare/internal/handler/api"
	"foodshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewStatsHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, listing *api.ListingHandler, stats *api.StatsHandler, profile *api.ProfileHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Listing: listing, Stats: stats, Profile: profile}
		},
	),
	fx.Invoke(handler.NewRouter),
)
