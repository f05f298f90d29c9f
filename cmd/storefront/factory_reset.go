package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopkeep/storefront/pkg/logger"
)

var factoryResetYes bool

// factoryResetCmd represents the factory-reset command
var factoryResetCmd = &cobra.Command{
	Use:   "factory-reset",
	Short: "Remove every product from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !factoryResetYes {
			return errors.New("refusing to clear the catalog without --yes")
		}

		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = app.Close(cmd.Context()) }()

		if err := app.Catalog.FactoryReset(cmd.Context()); err != nil {
			return err
		}
		log := logger.Component("cli")
		log.Warn().Str("command", "factory-reset").Msg("catalog cleared")
		fmt.Fprintln(cmd.OutOrStdout(), "所有商品已清空（恢復出廠）")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factoryResetCmd)
	factoryResetCmd.Flags().BoolVar(&factoryResetYes, "yes", false, "confirm the reset")
}
