package ports

import (
	"context"

	"github.com/shopkeep/storefront/internal/core/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	FactoryReset(ctx context.Context) error
}
