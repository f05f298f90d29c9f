package main

import (
	"github.com/spf13/cobra"

	"github.com/shopkeep/storefront/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the storefront HTTP server",
	Long: `Starts the storefront HTTP server and blocks until SIGINT or SIGTERM,
then shuts down gracefully. Usage:

	storefront serve
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd.Context())
		if err != nil {
			return err
		}

		srv, err := server.New(cmd.Context(), cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
		if err := srv.Run(cmd.Context()); err != nil {
			log.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
