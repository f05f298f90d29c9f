package ports

import (
	"context"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// CredentialRepository persists the admin singleton and the user collection.
type CredentialRepository interface {
	// Admin returns domain.ErrAdminAccountMissing when no admin was provisioned.
	Admin(ctx context.Context) (*domain.AdminAccount, error)
	SaveAdmin(ctx context.Context, admin domain.AdminAccount) error
	// FindUser matches username exactly and returns domain.ErrUserNotFound otherwise.
	FindUser(ctx context.Context, username string) (*domain.Identity, error)
	// CreateUser returns domain.ErrUserExists when the username is taken.
	CreateUser(ctx context.Context, user domain.Identity) error
	// EnsureUsers writes an empty collection if none exists yet.
	EnsureUsers(ctx context.Context) error
}
