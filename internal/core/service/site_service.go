package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopkeep/storefront/internal/core/ports"
	"github.com/shopkeep/storefront/internal/pkg/metrics"
)

// SiteService reads and writes the maintenance flag and the announcement.
// Reads fail open to false and ""; writes return the storage error.
type SiteService struct {
	repo   ports.SiteRepository
	audit  ports.AuditLog
	logger zerolog.Logger
}

func NewSiteService(repo ports.SiteRepository, audit ports.AuditLog, logger zerolog.Logger) *SiteService {
	return &SiteService{repo: repo, audit: audit, logger: logger}
}

func (s *SiteService) Maintenance(ctx context.Context) bool {
	on, err := s.repo.Maintenance(ctx)
	if err != nil {
		metrics.SiteReadFailuresTotal.WithLabelValues("maintenance").Inc()
		s.logger.Warn().Err(err).Msg("maintenance flag unreadable, assuming off")
		return false
	}
	return on
}

func (s *SiteService) SetMaintenance(ctx context.Context, on bool) error {
	if err := s.repo.SetMaintenance(ctx, on); err != nil {
		s.logger.Error().Err(err).Bool("maintenance", on).Msg("failed to write maintenance flag")
		return err
	}

	state := "OFF"
	gauge := 0.0
	if on {
		state, gauge = "ON", 1
	}
	metrics.MaintenanceEnabled.Set(gauge)
	s.audit.Append("maintenance: " + state)
	return nil
}

func (s *SiteService) Announcement(ctx context.Context) string {
	text, err := s.repo.Announcement(ctx)
	if err != nil {
		metrics.SiteReadFailuresTotal.WithLabelValues("announcement").Inc()
		s.logger.Warn().Err(err).Msg("announcement unreadable, serving empty text")
		return ""
	}
	return text
}

func (s *SiteService) SetAnnouncement(ctx context.Context, text string) error {
	if err := s.repo.SetAnnouncement(ctx, text); err != nil {
		s.logger.Error().Err(err).Msg("failed to write announcement")
		return err
	}
	s.audit.Append("announcement updated: " + text)
	return nil
}
