package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/calchub/internal/app"
	"github.com/doeshing/calchub/internal/domain"
)

func newCalculatorsCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculators",
		Short: "Browse the calculator catalog",
	}

	cmd.AddCommand(
		newCalculatorsListCommand(container),
		newCalculatorsShowCommand(container),
		newCalculatorsSearchCommand(container),
		newCalculatorsRecentCommand(container),
	)
	return cmd
}

func newCalculatorsListCommand(container *app.Container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calculators, optionally by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := container.Catalog.All()
			if category != "" {
				defs = container.Catalog.ByCategory(domain.Category(category))
				if len(defs) == 0 {
					return fmt.Errorf("no calculators in category %q", category)
				}
			}
			renderDefinitions(cmd.OutOrStdout(), defs)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (financial, health, math, other)")
	return cmd
}

func newCalculatorsShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <calculator-id>",
		Short: "Show a calculator's metadata and input fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := container.Catalog.ByID(args[0])
			if def == nil {
				return fmt.Errorf("calculator %q not found", args[0])
			}
			renderDefinition(cmd.OutOrStdout(), def)
			return nil
		},
	}
}

func newCalculatorsSearchCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search calculators by name, description, or category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			container.Searches.Remember(query)
			defs := container.Catalog.Search(query)
			if len(defs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No calculators matched.")
				return nil
			}
			renderDefinitions(cmd.OutOrStdout(), defs)
			return nil
		},
	}
}

func newCalculatorsRecentCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show recent catalog searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			recent := container.Searches.Recent()
			if len(recent) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent searches.")
				return nil
			}
			for _, query := range recent {
				fmt.Fprintln(cmd.OutOrStdout(), query)
			}
			return nil
		},
	}
}
