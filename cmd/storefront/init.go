package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create missing storage documents",
	Long: `Writes an empty catalog, an empty user list, maintenance off and an
empty announcement for every document that does not exist yet. Existing
documents are never overwritten. The admin account is provisioned separately
with "storefront admin set-password".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = app.Close(cmd.Context()) }()

		if err := app.Bootstrap(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "storage initialised")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
