package ports

import "context"

// SiteService exposes the site-wide flags. Reads never fail; writes do.
type SiteService interface {
	Maintenance(ctx context.Context) bool
	SetMaintenance(ctx context.Context, on bool) error
	Announcement(ctx context.Context) string
	SetAnnouncement(ctx context.Context, text string) error
}
