package components

import (
	"meetup-api/internal/handler"
	"meetup-api/internal/handler/api"
	"meetup-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMeetupHandler,
		api.NewSubscriptionHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
