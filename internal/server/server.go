package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopkeep/storefront/internal/api"
	"github.com/shopkeep/storefront/internal/pkg/config"
)

// Server wraps the Echo instance and the components behind it.
type Server struct {
	app  *App
	echo *echo.Echo
	log  zerolog.Logger
}

// New validates cfg, wires the application and registers all routes.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	if err := cfg.ValidateServe(); err != nil {
		return nil, err
	}

	app, err := Build(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := app.Bootstrap(ctx); err != nil {
		_ = app.Close(ctx)
		return nil, err
	}

	e := api.NewRouter(api.Deps{
		Logger:    log.With().Str("component", "http").Logger(),
		StaticDir: cfg.StaticDir,
		Backend:   cfg.Storage.Backend,
		Store:     app.Store,
		Tokens:    app.Tokens,
		Auth:      app.Auth,
		Catalog:   app.Catalog,
		Site:      app.Site,
		Audit:     app.Audit,
	})

	return &Server{app: app, echo: e, log: log}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	addr := s.app.Config.Addr()
	errCh := make(chan error, 1)

	go func() {
		s.log.Info().Str("addr", addr).Str("storage", s.app.Config.Storage.Backend).Msg("storefront listening")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = s.app.Close(context.Background())
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.app.Config.ShutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(shutdownCtx)
	if cerr := s.app.Close(shutdownCtx); err == nil {
		err = cerr
	}
	return err
}
