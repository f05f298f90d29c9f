package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
	"github.com/shopkeep/storefront/internal/pkg/metrics"
)

// CatalogService applies admin operations to the catalog and records each
// successful one in the audit log.
type CatalogService struct {
	repo   ports.CatalogRepository
	audit  ports.AuditLog
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, audit ports.AuditLog, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, audit: audit, logger: logger}
}

// List returns every product, hidden ones included.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.fail("list", err)
		return nil, err
	}
	return products, nil
}

// Insert appends p as given. Neither fields nor id uniqueness are checked.
func (s *CatalogService) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := s.repo.Insert(ctx, p); err != nil {
		s.fail("insert", err)
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("insert").Inc()
	s.audit.Append("new product: " + p.DisplayName())
	return &p, nil
}

// UpdateStatus stores status verbatim on the first product with id.
func (s *CatalogService) UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.fail("update_status", err)
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update_status").Inc()
	s.audit.Append("status change: " + updated.Name + " → " + string(status))
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.fail("delete", err)
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	s.audit.Append("deleted: " + deleted.Name)
	return nil
}

// FactoryReset empties the catalog.
func (s *CatalogService) FactoryReset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		s.fail("reset", err)
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("reset").Inc()
	s.audit.Append("factory reset: all products cleared")
	return nil
}

func (s *CatalogService) fail(op string, err error) {
	if errors.Is(err, domain.ErrProductNotFound) {
		metrics.CatalogErrorsTotal.WithLabelValues("not_found").Inc()
		return
	}
	metrics.CatalogErrorsTotal.WithLabelValues("storage").Inc()
	s.logger.Error().Err(err).Str("op", op).Msg("catalog operation failed")
}
