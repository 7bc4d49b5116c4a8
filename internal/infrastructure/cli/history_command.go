package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/calchub/internal/app"
)

const msgNoHistoryRecorded = "No calculations recorded yet."

func newHistoryCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded calculations",
	}

	cmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryShowCommand(container),
		newHistorySearchCommand(container),
		newHistoryDeleteCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)
	return cmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		limit      int
		calculator string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records := container.History.Recent(limit)
			if calculator != "" {
				records = container.History.ByCalculator(calculator)
				if limit <= 0 {
					records = nil
				} else if limit < len(records) {
					records = records[:limit]
				}
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), msgNoHistoryRecorded)
				return nil
			}
			renderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", container.Config.History.RecentLimit, "Max entries to show")
	cmd.Flags().StringVar(&calculator, "calculator", "", "Only entries for this calculator id")
	return cmd
}

func newHistoryShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded calculation in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid history id %q", args[0])
			}
			rec := container.History.ByID(id)
			if rec == nil {
				return fmt.Errorf("history record %d not found", id)
			}
			renderRecord(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search calculations by name, inputs, or results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := container.History.Search(args[0])
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No calculations matched.")
				return nil
			}
			renderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

func newHistoryDeleteCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one recorded calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid history id %q", args[0])
			}
			removed := container.History.Delete(id)
			if removed == nil {
				return fmt.Errorf("history record %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d (%s)\n", removed.ID, removed.CalculatorName)
			return nil
		},
	}
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.History.ClearAll()
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full history as pretty-printed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = container.Config.Export.Dir
			}
			path, err := container.Export.WriteHistory(dir)
			if err != nil {
				return fmt.Errorf("export history: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "Output directory (default from config)")
	return cmd
}
