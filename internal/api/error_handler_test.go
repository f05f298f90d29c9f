package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopkeep/storefront/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"unauthenticated", fmt.Errorf("%w: expired", domain.ErrUnauthenticated), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "找不到商品"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"conflict", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"missing admin", domain.ErrAdminAccountMissing, http.StatusInternalServerError, "account file missing"},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}
