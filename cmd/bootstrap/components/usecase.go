package components

import (
	"tutor-scheduling/internal/pkg/clock"
	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/commands"
	"tutor-scheduling/internal/usecase/queries"
	"tutor-scheduling/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedulingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)

func NewSchedulingPolicy(cfg config.Config) (shared.SchedulingPolicy, error) {
	loc, err := cfg.Scheduling.Location()
	if err != nil {
		return shared.SchedulingPolicy{}, err
	}
	if cfg.Scheduling.MinLeadTime < 0 {
		return shared.SchedulingPolicy{}, errs.New("SCHEDULING_MIN_LEAD_TIME must not be negative")
	}
	return shared.SchedulingPolicy{Location: loc, MinLeadTime: cfg.Scheduling.MinLeadTime}, nil
}
