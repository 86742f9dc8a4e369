package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fioapi/internal/config"
	"fioapi/internal/database"
	"fioapi/internal/handlers"
	"fioapi/internal/middleware"
	"fioapi/internal/repositories"
	"fioapi/internal/services"
)

// APIPrefix is where the bank endpoints are mounted, matching the production base URL
const APIPrefix = "/v1/rest"

// New assembles the mock bank application on db. gatherer is exposed on
// /metrics; pass prometheus.DefaultGatherer in production.
func New(cfg *config.MockServerConfig, db *database.DB, seeder *services.LedgerSeeder, gatherer prometheus.Gatherer, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", handlers.NewHealthCheckHandler(db.DB).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	repo := repositories.NewLedgerRepository(db.DB)
	limiter := middleware.NewTokenRateLimiter(cfg.RateLimitInterval)

	api := e.Group(APIPrefix, limiter.Middleware())
	handlers.NewFioHandler(repo, cfg.MaxItems, logger).RegisterRoutes(api)

	if seeder != nil {
		handlers.NewDevHandler(seeder).RegisterRoutes(e.Group("/dev"))
	}

	return e
}
