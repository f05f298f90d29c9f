// Package server wires configuration, storage, services and the HTTP router
// into a runnable storefront.
package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopkeep/storefront/internal/core/ports"
	"github.com/shopkeep/storefront/internal/core/service"
	"github.com/shopkeep/storefront/internal/infrastructure/auditlog"
	"github.com/shopkeep/storefront/internal/infrastructure/db"
	"github.com/shopkeep/storefront/internal/infrastructure/repository"
	"github.com/shopkeep/storefront/internal/pkg/config"
)

// App holds the wired components shared by the HTTP server and the CLI.
type App struct {
	Config *config.Config
	Logger zerolog.Logger

	Store ports.DocumentStore
	Audit *auditlog.Log

	CatalogRepo    *repository.CatalogRepository
	CredentialRepo *repository.CredentialRepository
	SiteRepo       *repository.SiteRepository

	Tokens  *service.TokenService
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Site    *service.SiteService

	closeStore db.Closer
}

// Build opens the configured document backend and wires every component.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, closer, err := db.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	audit := auditlog.New(auditlog.DefaultCapacity, log.With().Str("component", "audit").Logger(),
		auditlog.WithLocation(cfg.AuditLocation()))

	catalogRepo := repository.NewCatalogRepository(store)
	credentialRepo := repository.NewCredentialRepository(store)
	siteRepo := repository.NewSiteRepository(store)

	tokens := service.NewTokenService(cfg.Auth.JWTSecret)
	authService := service.NewAuthService(credentialRepo, tokens, audit,
		log.With().Str("component", "auth").Logger(),
		service.AuthOptions{
			AdminTokenTTL: cfg.Auth.AdminTokenTTL,
			UserTokenTTL:  cfg.Auth.UserTokenTTL,
			BcryptCost:    cfg.Auth.BcryptCost,
		})

	return &App{
		Config:         cfg,
		Logger:         log,
		Store:          store,
		Audit:          audit,
		CatalogRepo:    catalogRepo,
		CredentialRepo: credentialRepo,
		SiteRepo:       siteRepo,
		Tokens:         tokens,
		Auth:           authService,
		Catalog:        service.NewCatalogService(catalogRepo, audit, log.With().Str("component", "catalog").Logger()),
		Site:           service.NewSiteService(siteRepo, audit, log.With().Str("component", "site").Logger()),
		closeStore:     closer,
	}, nil
}

// Bootstrap writes every missing document with its empty value. Existing
// documents are left untouched.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.CatalogRepo.Ensure(ctx); err != nil {
		return fmt.Errorf("bootstrap products: %w", err)
	}
	if err := a.CredentialRepo.EnsureUsers(ctx); err != nil {
		return fmt.Errorf("bootstrap users: %w", err)
	}
	if err := a.SiteRepo.Ensure(ctx); err != nil {
		return fmt.Errorf("bootstrap site state: %w", err)
	}
	return nil
}

// Close releases the storage backend.
func (a *App) Close(ctx context.Context) error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore(ctx)
}
