package bootstrap

import (
	"log/slog"

	"tutor-scheduling/internal/handler/middleware"
	"tutor-scheduling/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	logger.Debug("scheduling policy loaded",
		"timezone", cfg.Scheduling.TimeZone,
		"min_lead_time", cfg.Scheduling.MinLeadTime,
		"window_cache", cfg.Redis.Enabled)
	return logger
}
