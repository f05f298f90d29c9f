package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// MaintenanceReader reports the current maintenance flag.
type MaintenanceReader interface {
	Maintenance(ctx context.Context) bool
}

// DefaultMaintenanceBypass lists the path prefixes that stay reachable while
// maintenance mode is on.
var DefaultMaintenanceBypass = []string{"/api", "/admin", "/health", "/metrics", "/swagger"}

// Maintenance answers every request outside bypass with the maintenance page
// while the flag is on. The flag is read on every request.
func Maintenance(site MaintenanceReader, bypass ...string) echo.MiddlewareFunc {
	if len(bypass) == 0 {
		bypass = DefaultMaintenanceBypass
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range bypass {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			if site.Maintenance(c.Request().Context()) {
				return c.HTML(http.StatusOK, domain.MaintenancePage)
			}
			return next(c)
		}
	}
}
