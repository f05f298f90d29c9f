// Package repository maps domain records onto JSON documents held in a
// ports.DocumentStore. Each repository serializes its own read-modify-write
// cycles with a mutex.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// Document names.
const (
	ProductsDocument     = "products.json"
	UsersDocument        = "users.json"
	AdminDocument        = "admin.json"
	MaintenanceDocument  = "maintenance.json"
	AnnouncementDocument = "announcement.json"
)

func loadJSON(ctx context.Context, docs ports.DocumentStore, name string, v any) error {
	data, err := docs.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func saveJSON(ctx context.Context, docs ports.DocumentStore, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return docs.Save(ctx, name, data)
}

// ensureJSON writes v under name only if the document does not exist.
func ensureJSON(ctx context.Context, docs ports.DocumentStore, name string, v any) error {
	_, err := docs.Load(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		return err
	}
	return saveJSON(ctx, docs, name, v)
}
