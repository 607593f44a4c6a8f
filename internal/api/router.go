package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/frholidays/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions tunes the cross-cutting middlewares.
type RouterOptions struct {
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// DefaultRouterOptions mirrors the configuration defaults.
var DefaultRouterOptions = RouterOptions{RateLimitPerMinute: 60, RequestTimeout: 10 * time.Second}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = DefaultRouterOptions.RateLimitPerMinute
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRouterOptions.RequestTimeout
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", handler.GetCatalog)
		v1.GET("/holidays", handler.GetHolidays)
		v1.GET("/holidays/check", handler.CheckHoliday)
		v1.GET("/holidays/range", handler.GetHolidayRange)
		v1.GET("/holidays/:key", handler.GetNamedHoliday)
		v1.GET("/easter", handler.GetEaster)
		v1.GET("/business-days", handler.GetBusinessDays)
		v1.GET("/business-days/next", handler.GetNextBusinessDay)
		v1.GET("/business-days/add", handler.AddBusinessDays)
	}

	return router
}
