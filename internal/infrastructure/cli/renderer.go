package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/calchub/internal/domain"
)

// isTerminal reports whether stdout is attached to a TTY; non-terminal
// output skips decorative separators so it pipes cleanly.
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderHeader(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	if isTerminal() {
		fmt.Fprintln(out, strings.Repeat("-", len(title)))
	}
}

// renderResults prints an output mapping with stable key order.
func renderResults(out io.Writer, results domain.Results) {
	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "  %-20s %v\n", key, results[key])
	}
}

func renderDefinitions(out io.Writer, defs []domain.CalculatorDefinition) {
	for _, def := range defs {
		fmt.Fprintf(out, "%-20s %-10s %s\n", def.ID, def.Category, def.Name)
	}
}

func renderDefinition(out io.Writer, def *domain.CalculatorDefinition) {
	renderHeader(out, def.Name)
	fmt.Fprintf(out, "id: %s\ncategory: %s\n%s\n\nfields:\n", def.ID, def.Category, def.Description)
	for _, field := range def.Fields {
		required := ""
		if field.Required {
			required = " (required)"
		}
		fmt.Fprintf(out, "  %-18s %-8s %s%s\n", field.Name, field.Type, field.Label, required)
		for _, opt := range field.Options {
			fmt.Fprintf(out, "    - %s: %s\n", opt.Value, opt.Label)
		}
	}
}

func renderHistory(out io.Writer, records []domain.HistoryRecord) {
	for _, rec := range records {
		fmt.Fprintf(out, "#%-4d %-28s %s\n", rec.ID, rec.CalculatorName, humanize.Time(rec.Timestamp))
	}
}

func renderRecord(out io.Writer, rec *domain.HistoryRecord) {
	fmt.Fprintf(out, "#%d %s (%s) at %s\n", rec.ID, rec.CalculatorName, rec.CalculatorID,
		rec.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, "inputs:")
	renderResults(out, domain.Results(rec.Inputs))
	fmt.Fprintln(out, "results:")
	renderResults(out, rec.Results)
}
