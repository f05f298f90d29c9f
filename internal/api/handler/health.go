package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// It pings the document store backing every repository.
type HealthDependenciesHandler struct {
	backend string
	store   ports.DocumentStore
	timeout time.Duration
}

func NewHealthDependenciesHandler(backend string, store ports.DocumentStore) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{backend: backend, store: store, timeout: 3 * time.Second}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, 1)
	status, httpStatus := "ok", http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		deps[h.backend] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	} else {
		deps[h.backend] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
