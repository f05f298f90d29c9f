package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/api/middleware"
	"github.com/shopkeep/storefront/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// absence means the route was registered without Auth.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
