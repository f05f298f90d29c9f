package ports

import (
	"context"
	"time"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// TokenIssuer signs bearer tokens.
type TokenIssuer interface {
	Issue(username, role string, ttl time.Duration) (string, error)
}

// TokenVerifier decodes bearer tokens. Any failure is domain.ErrUnauthenticated.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
	ProvisionAdmin(ctx context.Context, username, password string) error
}
