package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shopkeep/storefront/internal/pkg/config"
	"github.com/shopkeep/storefront/internal/server"
	"github.com/shopkeep/storefront/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront server and maintenance tools",
	Long: `Serves the storefront API and static pages, and manages its stored
documents from the command line. Configuration comes from the environment
(and a .env file outside production).`,
	SilenceUsage: true,
}

// setup loads configuration and initialises the process logger.
func setup(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "storefront",
	})
	return cfg, log, nil
}

// openApp wires the application for one-shot commands. The caller closes it.
func openApp(ctx context.Context) (*server.App, error) {
	cfg, log, err := setup(ctx)
	if err != nil {
		return nil, err
	}
	return server.Build(ctx, cfg, log)
}
