package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkeep/storefront/internal/infrastructure/repository"
	"github.com/shopkeep/storefront/internal/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Host:      "127.0.0.1",
		Port:      "0",
		StaticDir: t.TempDir(),
	}
	cfg.Auth.JWTSecret = "secret"
	cfg.Auth.BcryptCost = 4
	cfg.Storage.Backend = "file"
	cfg.Storage.DataDir = t.TempDir()
	return cfg
}

func TestBuild_Bootstrap(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app, err := Build(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(ctx) })

	require.NoError(t, app.Bootstrap(ctx))
	for _, name := range []string{
		repository.ProductsDocument,
		repository.UsersDocument,
		repository.MaintenanceDocument,
		repository.AnnouncementDocument,
	} {
		assert.FileExists(t, filepath.Join(cfg.Storage.DataDir, name))
	}
	assert.NoFileExists(t, filepath.Join(cfg.Storage.DataDir, repository.AdminDocument))

	products, err := app.Catalog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestBuild_BootstrapKeepsExistingDocuments(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	existing := []byte(`[{"id":"1","name":"Lamp","note":"","price":1}]`)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.DataDir, repository.ProductsDocument), existing, 0o600))

	app, err := Build(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Bootstrap(ctx))

	products, err := app.Catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
}

func TestBuild_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Backend = "cassandra"

	_, err := Build(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNew_RequiresSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.JWTSecret = ""

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNew_ServesHealth(t *testing.T) {
	srv, err := New(context.Background(), testConfig(t), zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
