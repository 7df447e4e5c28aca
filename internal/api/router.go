package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gatehouse/gatehouse/internal/api/handler"
	"github.com/gatehouse/gatehouse/internal/api/middleware"
	"github.com/gatehouse/gatehouse/internal/core/service"
	"github.com/gatehouse/gatehouse/internal/core/session"
	"github.com/gatehouse/gatehouse/internal/infrastructure/db/postgres"
	"github.com/gatehouse/gatehouse/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gatehouse"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo)
	sessions := session.NewManager(cfg.SecretKey, cfg.SessionTTL, cfg.RememberTTL)
	accountHandler := handler.NewAccountHandler(accountService, sessions)
	requireSession := middleware.Session(sessions, accountService)

	// --- Pages ---
	e.GET("/", accountHandler.Index, requireSession)
	e.POST("/", accountHandler.Index, requireSession)
	e.GET("/login", accountHandler.ShowLogin)
	e.POST("/login", accountHandler.Login)
	e.GET("/logout", accountHandler.Logout, requireSession)
	e.GET("/register", accountHandler.ShowRegister)
	e.POST("/register", accountHandler.Register)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
