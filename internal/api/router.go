package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tradingdash/journal-api/internal/api/handler"
	"github.com/tradingdash/journal-api/internal/api/middleware"
	"github.com/tradingdash/journal-api/internal/core/ports"
	"github.com/tradingdash/journal-api/internal/core/service"
	"github.com/tradingdash/journal-api/internal/infrastructure/config"
	"github.com/tradingdash/journal-api/internal/infrastructure/db/supabase"
)

// Deps bundles the collaborators the router wires behind each route. Tests
// swap in stubs; NewRouter builds the real Supabase-backed set.
type Deps struct {
	Gate     ports.AccessGate
	Journals ports.JournalService
	Users    ports.UserService
	Logger   zerolog.Logger

	// Registry receives the HTTP metrics collectors. When nil a private
	// registry is used, which keeps repeated router construction in tests
	// from tripping duplicate registration.
	Registry *prometheus.Registry
}

// NewRouter builds the Echo instance with the production dependency graph:
// one shared Supabase client feeding the token verifier and both table
// repositories.
func NewRouter(cfg *config.Config, client *supabase.Client, log zerolog.Logger) *echo.Echo {
	verifier := supabase.NewAuthClient(client)
	profiles := supabase.NewProfileRepository(client)
	journals := supabase.NewJournalRepository(client)

	return newRouter(cfg, Deps{
		Gate:     service.NewAccessGate(verifier, profiles, log),
		Journals: service.NewJournalService(journals, log),
		Users:    service.NewUserService(profiles, log),
		Logger:   log,
		Registry: prometheus.NewRegistry(),
	})
}

func newRouter(cfg *config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "journal_api",
		Registerer: reg,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler(cfg.Supabase.URL != "" && cfg.Supabase.AnonKey != "")
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))

	// --- Journal routes (authenticated user) ---
	journalHandler := handler.NewJournalHandler(deps.Journals)
	journals := e.Group("/api/journals", middleware.RequireUser(deps.Gate))
	journals.GET("/", journalHandler.List)
	journals.POST("/", journalHandler.Create)
	journals.PUT("/:id", journalHandler.Update)
	journals.DELETE("/:id", journalHandler.Delete)

	// --- User administration routes (admin only) ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := e.Group("/api/users", middleware.RequireAdmin(deps.Gate))
	users.GET("/", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id/role", userHandler.UpdateRole)

	return e
}
