package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/calchub/internal/app"
	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/services"
)

func newCalcCommand(container *app.Container) *cobra.Command {
	var (
		pairs    []string
		noSave   bool
		schedule bool
	)

	cmd := &cobra.Command{
		Use:   "calc <calculator-id>",
		Short: "Run a calculator and record the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			inputs, err := parseInputs(pairs)
			if err != nil {
				return err
			}

			def := container.Catalog.ByID(id)
			if def != nil {
				applyFieldDefaults(def, inputs)
			}

			results := container.Registry.Compute(id, inputs)

			name := id
			if def != nil {
				name = def.Name
			}
			if !noSave {
				rec := container.History.Create(domain.HistoryRecord{
					CalculatorID:   id,
					CalculatorName: name,
					Inputs:         inputs,
					Results:        results,
				})
				container.Logger.Debug("calculation recorded", map[string]interface{}{"id": rec.ID})
			}

			out := cmd.OutOrStdout()
			renderHeader(out, name)
			renderResults(out, results)

			if schedule {
				projection := services.ProjectionFor(def, inputs, results)
				if projection == nil {
					return fmt.Errorf("calculator %s has no data series", id)
				}
				data, filename, err := services.SeriesDocument(name, projection.Data)
				if err != nil {
					return err
				}
				path, err := writeDocument(container.Config.Export.Dir, filename, data)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nseries written to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&pairs, "in", nil, "Input as name=value (repeatable)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip recording the calculation in history")
	cmd.Flags().BoolVar(&schedule, "series", false, "Export the generated data series (loan/investment calculators)")
	return cmd
}

// parseInputs converts --in name=value pairs into an input mapping.
// Values stay textual; formulas coerce them.
func parseInputs(pairs []string) (domain.Inputs, error) {
	inputs := domain.Inputs{}
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid input %q, expected name=value", pair)
		}
		inputs[name] = value
	}
	return inputs, nil
}

// applyFieldDefaults fills absent fields that declare a default value.
func applyFieldDefaults(def *domain.CalculatorDefinition, inputs domain.Inputs) {
	for _, field := range def.Fields {
		if _, ok := inputs[field.Name]; !ok && field.DefaultValue != "" {
			inputs[field.Name] = field.DefaultValue
		}
	}
}
