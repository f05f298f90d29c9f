package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopkeep/storefront/internal/core/domain"
)

func TestDocumentStore_Key(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	if got := NewDocumentStore(client, "").key("products.json"); got != "storefront:products.json" {
		t.Fatalf("unexpected default key: %s", got)
	}
	if got := NewDocumentStore(client, "shop-a:").key("users.json"); got != "shop-a:users.json" {
		t.Fatalf("unexpected prefixed key: %s", got)
	}
}

func TestDocumentStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	store := NewDocumentStore(client, "")
	ctx := context.Background()

	if _, err := store.Load(ctx, "products.json"); err == nil || errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected a connection error, got %v", err)
	}
	if err := store.Save(ctx, "products.json", []byte("[]")); err == nil {
		t.Fatalf("expected a connection error")
	}
	if err := store.Ping(ctx); err == nil {
		t.Fatalf("expected ping to fail")
	}
}
