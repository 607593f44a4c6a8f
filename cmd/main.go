package main

//
//  @title           frholidays API
//  @version         1.0
//  @description     French bank holidays: yearly calendars, membership checks and business days.
//  @termsOfService  https://github.com/guttosm/frholidays
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/frholidays
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        holidays
//  @tag.description French bank holidays
//
//  @tag.name        business-days
//  @tag.description Working-day arithmetic
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/frholidays/config"
	_ "github.com/guttosm/frholidays/docs" // swagger docs
	"github.com/guttosm/frholidays/internal/app"
	"github.com/guttosm/frholidays/internal/dates"
	"github.com/guttosm/frholidays/internal/domain/models"
	"github.com/guttosm/frholidays/internal/logger"
	"github.com/guttosm/frholidays/internal/render"
	"github.com/guttosm/frholidays/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// cliOptions carries the flags used by the one-shot modes.
type cliOptions struct {
	Year   int
	From   int
	To     int
	Date   string
	N      int
	Format render.Format
}

// runList prints the holidays of one year, or of every year in [From, To]
// when both are set.
func runList(ctx context.Context, w io.Writer, svc service.HolidayService, o cliOptions) error {
	if o.From != 0 || o.To != 0 {
		years, err := svc.ForRange(ctx, o.From, o.To)
		if err != nil {
			return err
		}
		return render.Years(w, o.Format, years)
	}

	var year *int
	if o.Year != 0 {
		year = &o.Year
	}
	y, err := svc.ForYear(ctx, year)
	if err != nil {
		return err
	}
	return render.Years(w, o.Format, []models.YearHolidays{y})
}

// runCheck prints whether o.Date is a bank holiday. Without a date, --year
// checks January 1 of that year, and with neither it checks today.
func runCheck(ctx context.Context, w io.Writer, svc service.HolidayService, o cliOptions) error {
	var date any = o.Date
	if o.Date == "" && o.Year != 0 {
		date = o.Year
	}
	c, err := svc.Check(ctx, date)
	if err != nil {
		return err
	}
	return render.Check(w, o.Format, c)
}

// runBusiness prints the last o.N business days ending at o.Date.
func runBusiness(ctx context.Context, w io.Writer, svc service.HolidayService, o cliOptions) error {
	days, err := svc.LastBusinessDays(ctx, o.Date, o.N)
	if err != nil {
		return err
	}
	return render.Dates(w, o.Format, dates.FormatAll(days))
}

// runAdd prints the date o.N business days from o.Date (backwards when negative).
func runAdd(ctx context.Context, w io.Writer, svc service.HolidayService, o cliOptions) error {
	s, err := svc.AddBusinessDays(ctx, o.Date, o.N)
	if err != nil {
		return err
	}
	return render.Shift(w, o.Format, s)
}

// runOnce dispatches a one-shot mode.
func runOnce(ctx context.Context, w io.Writer, mode string, svc service.HolidayService, o cliOptions) error {
	switch mode {
	case "list":
		return runList(ctx, w, svc, o)
	case "check":
		return runCheck(ctx, w, svc, o)
	case "business":
		return runBusiness(ctx, w, svc, o)
	case "add":
		return runAdd(ctx, w, svc, o)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// main is the entry point of the frholidays application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API.
//   - list:     Prints the holidays of --year (or --from..--to).
//   - check:    Prints whether --date (or January 1 of --year) is a bank holiday.
//   - business: Prints the last --n business days ending at --date.
//   - add:      Moves --n business days from --date; negative --n goes back.
//
// Flags:
//   - --mode:   Execution mode. Default: "api".
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --format: Output of the one-shot modes ("text", "json" or "yaml"). Default: "text".
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api, list, check, business or add")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	year := flag.Int("year", 0, "Year to list (default: current year)")
	from := flag.Int("from", 0, "First year of a range to list")
	to := flag.Int("to", 0, "Last year of a range to list")
	date := flag.String("date", "", "Date for check/business modes, YYYY-MM-DD (default: today)")
	n := flag.Int("n", 5, "Business days to print (business) or to move by, signed (add)")
	format := flag.String("format", "text", "Output format: text, json or yaml")
	flag.Parse()

	if *mode == "api" {
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)
		return
	}

	f, err := render.ParseFormat(*format)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid format")
	}

	svc, err := app.NewService(config.AppConfig)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("service init error")
	}

	opts := cliOptions{Year: *year, From: *from, To: *to, Date: *date, N: *n, Format: f}
	if err := runOnce(ctx, os.Stdout, *mode, svc, opts); err != nil {
		logger.L().Fatal().Err(err).Str("mode", *mode).Msg("command failed")
	}
}
