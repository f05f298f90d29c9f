// Package db opens the document backend selected by configuration.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopkeep/storefront/internal/core/ports"
	"github.com/shopkeep/storefront/internal/infrastructure/db/file"
	"github.com/shopkeep/storefront/internal/infrastructure/db/mongo"
	"github.com/shopkeep/storefront/internal/infrastructure/db/redis"
	"github.com/shopkeep/storefront/internal/pkg/config"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Closer releases backend connections.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// Open returns the DocumentStore for cfg.Backend together with a Closer.
func Open(ctx context.Context, cfg config.StorageConfig) (ports.DocumentStore, Closer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendFile:
		store, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return store, noopCloser, nil

	case BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis storage: %w", err)
		}
		return redis.NewDocumentStore(client, cfg.Redis.Prefix), func(context.Context) error {
			return client.Close()
		}, nil

	case BackendMongo:
		client, database, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open mongo storage: %w", err)
		}
		return mongo.NewDocumentStore(database), client.Disconnect, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
