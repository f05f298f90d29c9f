package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
)

// CredentialRepository implements ports.CredentialRepository on the admin and
// users documents. A missing users document reads as an empty collection.
type CredentialRepository struct {
	mu   sync.Mutex
	docs ports.DocumentStore
}

func NewCredentialRepository(docs ports.DocumentStore) *CredentialRepository {
	return &CredentialRepository{docs: docs}
}

func (r *CredentialRepository) Admin(ctx context.Context) (*domain.AdminAccount, error) {
	var admin domain.AdminAccount
	if err := loadJSON(ctx, r.docs, AdminDocument, &admin); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return nil, domain.ErrAdminAccountMissing
		}
		return nil, fmt.Errorf("read admin: %w", err)
	}
	return &admin, nil
}

func (r *CredentialRepository) SaveAdmin(ctx context.Context, admin domain.AdminAccount) error {
	if err := saveJSON(ctx, r.docs, AdminDocument, admin); err != nil {
		return fmt.Errorf("write admin: %w", err)
	}
	return nil
}

func (r *CredentialRepository) FindUser(ctx context.Context, username string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *CredentialRepository) CreateUser(ctx context.Context, user domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}

	if err := saveJSON(ctx, r.docs, UsersDocument, append(users, user)); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

func (r *CredentialRepository) EnsureUsers(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ensureJSON(ctx, r.docs, UsersDocument, []domain.Identity{})
}

func (r *CredentialRepository) loadUsers(ctx context.Context) ([]domain.Identity, error) {
	var users []domain.Identity
	if err := loadJSON(ctx, r.docs, UsersDocument, &users); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return []domain.Identity{}, nil
		}
		return nil, fmt.Errorf("read users: %w", err)
	}
	return users, nil
}
