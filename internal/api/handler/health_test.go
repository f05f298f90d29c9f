package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubStore struct{ pingErr error }

func (s *stubStore) Load(context.Context, string) ([]byte, error) { return nil, nil }
func (s *stubStore) Save(context.Context, string, []byte) error  { return nil }
func (s *stubStore) Ping(context.Context) error                  { return s.pingErr }

func TestHealthHandler_Liveness(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"unreachable", errors.New("connection refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			h := NewHealthDependenciesHandler("redis", &stubStore{pingErr: tc.err})
			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			resp := decode[readinessResponse](t, rec)
			if resp.Status != tc.status {
				t.Fatalf("expected status %q, got %q", tc.status, resp.Status)
			}
			if _, ok := resp.Dependencies["redis"]; !ok {
				t.Fatalf("missing dependency entry: %+v", resp.Dependencies)
			}
		})
	}
}
