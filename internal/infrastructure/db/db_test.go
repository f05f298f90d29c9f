package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkeep/storefront/internal/infrastructure/db/file"
	"github.com/shopkeep/storefront/internal/pkg/config"
)

func TestOpen_FileBackend(t *testing.T) {
	dir := t.TempDir()
	store, closeFn, err := Open(context.Background(), config.StorageConfig{Backend: "File", DataDir: dir})
	require.NoError(t, err)
	defer closeFn(context.Background())

	fs, ok := store.(*file.DocumentStore)
	require.True(t, ok, "expected file store, got %T", store)
	assert.Equal(t, dir, fs.Dir())
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), config.StorageConfig{Backend: "etcd"})
	assert.ErrorContains(t, err, `unknown storage backend "etcd"`)
}
