package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if err := claims.RequireRole(allowedRoles...); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden").SetInternal(err)
			}
			return next(c)
		}
	}
}
