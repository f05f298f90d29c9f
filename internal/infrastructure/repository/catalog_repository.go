package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// CatalogRepository implements ports.CatalogRepository on the products document.
type CatalogRepository struct {
	mu   sync.Mutex
	docs ports.DocumentStore
}

func NewCatalogRepository(docs ports.DocumentStore) *CatalogRepository {
	return &CatalogRepository{docs: docs}
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *CatalogRepository) Insert(ctx context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(products, p))
}

func (r *CatalogRepository) UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(products, id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	products[i].Status = status

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	updated := products[i]
	return &updated, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(products, id)
	if i < 0 {
		return nil, domain.ErrProductNotFound
	}
	deleted := products[i]
	products = append(products[:i], products[i+1:]...)

	if err := r.save(ctx, products); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *CatalogRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, []domain.Product{})
}

func (r *CatalogRepository) Ensure(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ensureJSON(ctx, r.docs, ProductsDocument, []domain.Product{})
}

func (r *CatalogRepository) load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := loadJSON(ctx, r.docs, ProductsDocument, &products); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (r *CatalogRepository) save(ctx context.Context, products []domain.Product) error {
	if err := saveJSON(ctx, r.docs, ProductsDocument, products); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

// indexOf returns the first product with id, or -1.
func indexOf(products []domain.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
