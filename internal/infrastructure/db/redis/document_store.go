package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shopkeep/storefront/internal/core/domain"
)

const defaultPrefix = "storefront:"

// DocumentStore keeps each document as a plain string value.
// Key format: <prefix><document name>
type DocumentStore struct {
	client *redis.Client
	prefix string
}

// NewDocumentStore wraps client. An empty prefix falls back to "storefront:".
func NewDocumentStore(client *redis.Client, prefix string) *DocumentStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &DocumentStore{client: client, prefix: prefix}
}

func (s *DocumentStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("load %s: %w", name, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return data, nil
}

func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *DocumentStore) key(name string) string {
	return s.prefix + name
}
