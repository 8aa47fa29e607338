package components

import (
	"tutor-scheduling/internal/handler"
	"tutor-scheduling/internal/handler/api"
	"tutor-scheduling/internal/handler/middleware"
	"tutor-scheduling/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewReserveRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
