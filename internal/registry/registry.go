// Package registry binds calculator identifiers to their formulas and
// static metadata. The dispatch table is a closed map populated at
// construction; there is no reflection or open-ended registration.
package registry

import (
	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/formula"
)

// NotImplementedResult is the sentinel value returned for unknown ids.
// Callers must treat it as a valid, non-error result.
const NotImplementedResult = "Calculator not implemented"

// Registry is the calculation dispatch table plus catalog metadata.
type Registry struct {
	defs     []domain.CalculatorDefinition
	byID     map[string]int
	formulas map[string]formula.Func
}

// New builds the registry with every calculator bound to its formula.
func New() *Registry {
	defs := catalog()
	r := &Registry{
		defs:     defs,
		byID:     make(map[string]int, len(defs)),
		formulas: make(map[string]formula.Func, len(defs)),
	}
	for i, def := range defs {
		r.byID[def.ID] = i
	}

	bindings := map[string]formula.Func{
		"mortgage":            formula.AmortizedLoan,
		"loan":                formula.AmortizedLoan,
		"amortization":        formula.AmortizedLoan,
		"compound-interest":   formula.CompoundInterest,
		"investment":          formula.InvestmentGrowth,
		"mortgage-payoff":     formula.MortgagePayoff,
		"house-affordability": formula.HouseAffordability,
		"rent-affordability":  formula.RentAffordability,
		"debt-to-income":      formula.DebtToIncome,
		"rental-property":     formula.RentalProperty,
		"refinance":           formula.Refinance,
		"apr":                 formula.APR,
		"bmi":                 formula.BMI,
		"bmr":                 formula.BMR,
		"age":                 formula.Age,
		"percentage":          formula.Percentage,
		"scientific":          formula.Scientific,
		"currency":            formula.CurrencyConvert,
		"unit-length":         formula.LengthConvert,
	}
	for id, fn := range bindings {
		r.formulas[id] = fn
	}
	return r
}

// Compute executes the formula bound to id. Unknown ids return the
// not-implemented sentinel with the inputs echoed back; execution is
// side-effect-free and recording history is the caller's responsibility.
func (r *Registry) Compute(id string, in domain.Inputs) domain.Results {
	fn, ok := r.formulas[id]
	if !ok {
		return domain.Results{
			"result": NotImplementedResult,
			"inputs": in,
		}
	}
	return fn(in)
}

// Definitions returns a copy of the full catalog in declaration order.
func (r *Registry) Definitions() []domain.CalculatorDefinition {
	out := make([]domain.CalculatorDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Definition returns the metadata for id, or nil when unknown.
func (r *Registry) Definition(id string) *domain.CalculatorDefinition {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	def := r.defs[i]
	return &def
}
