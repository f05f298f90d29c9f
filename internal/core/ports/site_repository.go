package ports

import "context"

// SiteRepository stores the maintenance flag and the announcement as two
// independent documents.
type SiteRepository interface {
	Maintenance(ctx context.Context) (bool, error)
	SetMaintenance(ctx context.Context, on bool) error
	Announcement(ctx context.Context) (string, error)
	SetAnnouncement(ctx context.Context, text string) error
}
