// Package cli wires the cobra command tree over the application
// container.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/calchub/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "calchub",
		Short: "CalcHub - calculator catalog with history",
		Long:  "CalcHub runs a catalog of financial, health, math, and conversion calculators and records every computation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCalcCommand(container))
	root.AddCommand(newCalculatorsCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newServeCommand(container))
	return root, nil
}
