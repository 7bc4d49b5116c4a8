package formula

import "github.com/doeshing/calchub/internal/domain"

// Percentage computes value·percent/100, the combined total, and what
// percent value is of the optional "total" input (defaulting to 1 to
// avoid dividing by zero).
func Percentage(in domain.Inputs) domain.Results {
	value := Number(in, "value")
	percentage := Number(in, "percentage")

	result := value * percentage / 100
	base := Number(in, "total")
	if base == 0 {
		base = 1
	}

	return domain.Results{
		"result":       Round2(result),
		"total":        Round2(value + result),
		"percentageOf": Round2(value / base * 100),
	}
}

// Scientific evaluates a restricted arithmetic expression. Characters
// outside digits, + - * / ( ) . and whitespace are stripped before
// evaluation; anything that still fails to parse yields the "Error"
// sentinel instead of an error.
func Scientific(in domain.Inputs) domain.Results {
	expression := Text(in, "expression")

	value, err := evalExpression(expression)
	if err != nil {
		return domain.Results{
			"result":     "Error",
			"expression": expression,
		}
	}

	return domain.Results{
		"result":     roundExpr(value),
		"expression": expression,
	}
}
