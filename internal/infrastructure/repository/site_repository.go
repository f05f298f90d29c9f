package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// SiteRepository implements ports.SiteRepository. Read errors, including a
// missing document, are returned as-is; defaulting is the caller's policy.
type SiteRepository struct {
	mu   sync.Mutex
	docs ports.DocumentStore
}

func NewSiteRepository(docs ports.DocumentStore) *SiteRepository {
	return &SiteRepository{docs: docs}
}

func (r *SiteRepository) Maintenance(ctx context.Context) (bool, error) {
	var doc domain.Maintenance
	if err := loadJSON(ctx, r.docs, MaintenanceDocument, &doc); err != nil {
		return false, fmt.Errorf("read maintenance: %w", err)
	}
	return doc.Maintenance, nil
}

func (r *SiteRepository) SetMaintenance(ctx context.Context, on bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := saveJSON(ctx, r.docs, MaintenanceDocument, domain.Maintenance{Maintenance: on}); err != nil {
		return fmt.Errorf("write maintenance: %w", err)
	}
	return nil
}

func (r *SiteRepository) Announcement(ctx context.Context) (string, error) {
	var doc domain.Announcement
	if err := loadJSON(ctx, r.docs, AnnouncementDocument, &doc); err != nil {
		return "", fmt.Errorf("read announcement: %w", err)
	}
	return doc.Text, nil
}

func (r *SiteRepository) SetAnnouncement(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := saveJSON(ctx, r.docs, AnnouncementDocument, domain.Announcement{Text: text}); err != nil {
		return fmt.Errorf("write announcement: %w", err)
	}
	return nil
}

// Ensure writes default site documents that do not exist yet.
func (r *SiteRepository) Ensure(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ensureJSON(ctx, r.docs, MaintenanceDocument, domain.Maintenance{}); err != nil {
		return err
	}
	return ensureJSON(ctx, r.docs, AnnouncementDocument, domain.Announcement{})
}
