package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/saffron-menu/internal/catalog"
	"github.com/Lixing-Zhang/saffron-menu/internal/currency"
	"github.com/Lixing-Zhang/saffron-menu/internal/models"
)

// runPrint writes the menu to stdout
func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	menu, err := catalog.Load(cfg.Menu.CatalogFile)
	if err != nil {
		return err
	}

	return printMenu(cmd.OutOrStdout(), menu, currency.NewFormatter(cfg.Menu.CurrencySymbol), printCategory)
}

// printMenu renders the catalog, or a single category of it, as aligned
// plain text
func printMenu(w io.Writer, menu *models.Catalog, money *currency.Formatter, categoryID string) error {
	categories := menu.Categories
	if categoryID != "" {
		category, ok := menu.Category(categoryID)
		if !ok {
			return fmt.Errorf("unknown category %q", categoryID)
		}
		categories = []models.MenuCategory{category}
	}

	fmt.Fprintln(w, menu.Name)
	if menu.Tagline != "" {
		fmt.Fprintln(w, menu.Tagline)
	}

	for _, category := range categories {
		fmt.Fprintf(w, "\n%s (%d)\n", strings.ToUpper(category.Name), category.Len())

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, item := range category.Items {
			diet := "non-veg"
			if item.IsVeg {
				diet = "veg"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", item.ID, item.Name, diet, money.Format(item.Price))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if menu.Footer != "" {
		fmt.Fprintf(w, "\n%s\n", menu.Footer)
	}
	return nil
}
