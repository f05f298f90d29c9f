package ports

import (
	"context"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// CatalogRepository stores the ordered product list. Each mutation is a
// complete read-modify-write of the catalog document.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	// UpdateStatus rewrites the status of the first product with id.
	UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error)
	// Delete removes the first product with id and returns it.
	Delete(ctx context.Context, id string) (*domain.Product, error)
	// Reset replaces the catalog with an empty list.
	Reset(ctx context.Context) error
	// Ensure writes an empty catalog if none exists yet.
	Ensure(ctx context.Context) error
}
