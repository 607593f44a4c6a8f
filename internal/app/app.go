package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/frholidays/config"
	"github.com/guttosm/frholidays/internal/api"
	"github.com/guttosm/frholidays/internal/dates"
	"github.com/guttosm/frholidays/internal/holiday"
	"github.com/guttosm/frholidays/internal/service"
)

// Indirections for unit testing.
var (
	normalizerLoader             = dates.LoadNormalizer
	clockSource      dates.Clock = dates.SystemClock{}
)

// NewService builds the holiday service from the given configuration.
//
// Responsibilities:
//   - Resolves the configured timezone into a date normalizer.
//   - Injects the clock used for "current year" / "today" defaults.
func NewService(cfg config.Config) (service.HolidayService, error) {
	norm, err := normalizerLoader(cfg.Holidays.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize date normalizer: %w", err)
	}
	return service.NewHolidayService(norm, clockSource, cfg.Holidays.RangeParallelism), nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the holiday service (timezone policy + clock).
//   - Creates the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, err := NewService(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
	})

	healthHandler := api.NewHealthHandler(SelfCheck)
	healthHandler.Register(router)

	// Nothing to release: the engine holds no resources.
	cleanup := func() {}

	return router, cleanup, nil
}

// SelfCheck verifies the engine still produces the known 2021 calendar.
func SelfCheck() error {
	const year = 2021
	want := []string{
		"2021-01-01", "2021-04-05", "2021-05-01", "2021-05-08", "2021-05-13", "2021-05-24",
		"2021-07-14", "2021-08-15", "2021-11-01", "2021-11-11", "2021-12-25",
	}
	got := dates.FormatAll(holiday.HolidaysForYear(year))
	if len(got) != len(want) {
		return fmt.Errorf("self-check: %d holidays in %d, want %d", len(got), year, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("self-check: holiday %d is %s, want %s", i, got[i], want[i])
		}
	}
	return nil
}
