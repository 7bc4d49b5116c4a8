// Package formula holds the stateless numeric procedures behind every
// calculator. Each Func is pure: the same inputs always produce the same
// outputs, and malformed or missing numeric fields coerce to zero instead
// of failing.
package formula

import (
	"math"
	"strconv"
	"strings"

	"github.com/doeshing/calchub/internal/domain"
)

// Func transforms a mapping of named inputs into a mapping of named outputs.
type Func func(domain.Inputs) domain.Results

// Number reads a numeric input. Values may arrive as float64, int, or text;
// anything unparsable (or absent) becomes 0.
func Number(in domain.Inputs, key string) float64 {
	switch v := in[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Text reads a string input, returning "" when absent or non-textual.
func Text(in domain.Inputs, key string) string {
	s, _ := in[key].(string)
	return s
}

// Round2 rounds to 2 decimal places (monetary and ratio outputs).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round4 rounds to 4 decimal places (conversion factors).
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
