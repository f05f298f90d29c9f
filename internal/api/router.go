package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shopkeep/storefront/internal/api/handler"
	"github.com/shopkeep/storefront/internal/api/middleware"
	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Logger    zerolog.Logger
	StaticDir string

	Backend string
	Store   ports.DocumentStore

	Tokens  ports.TokenVerifier
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Site    ports.SiteService
	Audit   ports.AuditLog

	// Registerer and Gatherer back the HTTP metrics and /metrics. Nil means
	// the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "storefront",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// Maintenance must precede Static.
	e.Use(middleware.Maintenance(d.Site))
	if d.StaticDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  d.StaticDir,
			Index: "index.html",
		}))
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	productHandler := handler.NewProductHandler(d.Catalog)
	siteHandler := handler.NewSiteHandler(d.Site, d.Audit)

	authMiddleware := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public API ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/admin/login", authHandler.AdminLogin)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/maintenance", siteHandler.GetMaintenance)
	e.GET("/api/announcement", siteHandler.GetAnnouncement)

	// --- Any signed-in identity ---
	e.GET("/api/users/me", authHandler.Me, authMiddleware)

	// --- Admin API ---
	e.POST("/api/products", productHandler.Create, authMiddleware, adminOnly)
	e.POST("/api/products/:id/status", productHandler.UpdateStatus, authMiddleware, adminOnly)
	e.DELETE("/api/products/:id", productHandler.Delete, authMiddleware, adminOnly)
	e.POST("/api/factory-reset", productHandler.FactoryReset, authMiddleware, adminOnly)
	e.POST("/api/maintenance", siteHandler.SetMaintenance, authMiddleware, adminOnly)
	e.POST("/api/announcement", siteHandler.SetAnnouncement, authMiddleware, adminOnly)
	e.GET("/api/logs", siteHandler.Logs, authMiddleware, adminOnly)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Backend, d.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
