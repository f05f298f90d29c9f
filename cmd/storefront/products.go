package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopkeep/storefront/internal/core/domain"
)

// productsCmd represents the products command.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Inspect the catalog",
}

var productsListAll bool

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog as the storefront shows it",
	Long: `Prints the catalog with storefront labels. Hidden products are left
out unless --all is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = app.Close(cmd.Context()) }()

		products, err := app.Catalog.List(cmd.Context())
		if err != nil {
			return err
		}
		return printProducts(cmd.OutOrStdout(), products, productsListAll)
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)

	productsListCmd.Flags().BoolVar(&productsListAll, "all", false, "include hidden products")
}

func printProducts(out io.Writer, products []domain.Product, all bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTATUS\tNOTE")
	for _, p := range products {
		label := domain.StatusLabel(p.Status)
		if !p.Listed() {
			if !all {
				continue
			}
			label = "(hidden)"
		}
		price := "-"
		if p.Price != nil {
			price = "NT$ " + strconv.FormatFloat(*p.Price, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, price, label, p.Note)
	}
	return w.Flush()
}
