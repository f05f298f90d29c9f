package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(token string) (*domain.Claims, error)
}

func (s *stubVerifier) Verify(token string) (*domain.Claims, error) {
	return s.verifyFn(token)
}

func acceptOnly(valid string, claims *domain.Claims) *stubVerifier {
	return &stubVerifier{verifyFn: func(token string) (*domain.Claims, error) {
		if token != valid {
			return nil, domain.ErrUnauthenticated
		}
		return claims, nil
	}}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(acceptOnly("good", &domain.Claims{Username: "alice", Role: domain.RoleAdmin}))
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(UsernameKey) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(RoleKey) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		if claims := ClaimsFrom(c); claims == nil || claims.Username != "alice" {
			t.Fatalf("claims not set: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := map[string]string{
		"missing header":  "",
		"wrong scheme":    "Token good",
		"invalid token":   "Bearer not-a-token",
		"empty bearer":    "Bearer ",
		"no token at all": "Bearer",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth(acceptOnly("good", &domain.Claims{Username: "alice", Role: domain.RoleAdmin}))
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
