package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// Context keys set by Auth.
const (
	ClaimsKey   = "claims"
	UsernameKey = "username"
	RoleKey     = "role"
)

// Auth verifies the bearer token and injects its claims into the context.
// Every failure is the same 401 so callers cannot tell expired from forged.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized").SetInternal(err)
			}

			c.Set(ClaimsKey, claims)
			c.Set(UsernameKey, claims.Username)
			c.Set(RoleKey, claims.Role)

			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}
