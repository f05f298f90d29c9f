package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopkeep/storefront/internal/core/domain"
	"github.com/shopkeep/storefront/internal/core/ports"
	"github.com/shopkeep/storefront/internal/pkg/metrics"
)

// AdminTokenTTL is the lifetime of tokens issued by AdminLogin.
const AdminTokenTTL = 2 * time.Hour

// AuthOptions tunes AuthService. Zero values pick the defaults.
type AuthOptions struct {
	AdminTokenTTL time.Duration
	UserTokenTTL  time.Duration
	BcryptCost    int
}

// AuthService implements registration, user login and admin login.
type AuthService struct {
	repo   ports.CredentialRepository
	tokens ports.TokenIssuer
	audit  ports.AuditLog
	logger zerolog.Logger

	adminTTL time.Duration
	userTTL  time.Duration
	cost     int
}

func NewAuthService(
	repo ports.CredentialRepository,
	tokens ports.TokenIssuer,
	audit ports.AuditLog,
	logger zerolog.Logger,
	opts AuthOptions,
) *AuthService {
	if opts.AdminTokenTTL <= 0 {
		opts.AdminTokenTTL = AdminTokenTTL
	}
	if opts.UserTokenTTL <= 0 {
		opts.UserTokenTTL = defaultTokenTTL
	}
	if opts.BcryptCost < bcrypt.MinCost || opts.BcryptCost > bcrypt.MaxCost {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		audit:    audit,
		logger:   logger,
		adminTTL: opts.AdminTokenTTL,
		userTTL:  opts.UserTokenTTL,
		cost:     opts.BcryptCost,
	}
}

// Register creates a user with role "user".
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
		return domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.repo.CreateUser(ctx, domain.Identity{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return err
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("username", username).Msg("failed to register user")
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.audit.Append("user registered: " + username)
	return nil
}

// Login verifies a registered user and returns a token carrying the stored
// role (legacy records without a role count as "user").
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user", "not_found").Inc()
			return "", err
		}
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("user", "invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.EffectiveRole(), s.userTTL)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// AdminLogin verifies the operator account and returns a short-lived admin
// token. A missing admin account is a deployment error.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.Admin(ctx)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
		if errors.Is(err, domain.ErrAdminAccountMissing) {
			s.logger.Error().Msg("admin account is not provisioned")
		}
		return "", err
	}

	if username == "" || username != admin.Username ||
		bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "invalid_credentials").Inc()
		s.logger.Warn().Str("username", username).Msg("admin login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.Username, domain.RoleAdmin, s.adminTTL)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	s.audit.Append("admin login: " + admin.Username)
	return token, nil
}

// ProvisionAdmin writes the admin account, replacing any existing one.
func (s *AuthService) ProvisionAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.SaveAdmin(ctx, domain.AdminAccount{Username: username, PasswordHash: string(hash)}); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("admin account provisioned")
	return nil
}
