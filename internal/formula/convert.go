package formula

import "github.com/doeshing/calchub/internal/domain"

// currencyRates is a static lookup table of units per US dollar.
// Rates are fixed snapshots, not live quotes.
var currencyRates = map[string]float64{
	"USD": 1,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110.0,
	"CAD": 1.25,
	"AUD": 1.35,
	"CHF": 0.92,
	"CNY": 6.45,
	"INR": 74.5,
}

// lengthFactors is the meters-equivalence of each supported length unit.
var lengthFactors = map[string]float64{
	"mm": 0.001,
	"cm": 0.01,
	"m":  1,
	"km": 1000,
	"in": 0.0254,
	"ft": 0.3048,
	"yd": 0.9144,
	"mi": 1609.344,
}

// CurrencyConvert converts through the USD base using the static rate
// table. Unknown currency codes coerce the result to 0.
func CurrencyConvert(in domain.Inputs) domain.Results {
	amount := Number(in, "amount")
	from := currencyRates[Text(in, "from")]
	to := currencyRates[Text(in, "to")]

	var converted, rate float64
	if from > 0 && to > 0 {
		rate = to / from
		converted = amount * rate
	}

	return domain.Results{
		"convertedAmount": Round2(converted),
		"rate":            Round4(rate),
	}
}

// LengthConvert chains the conversion through meters:
// value · factor[from] / factor[to].
func LengthConvert(in domain.Inputs) domain.Results {
	value := Number(in, "value")
	from := lengthFactors[Text(in, "from")]
	to := lengthFactors[Text(in, "to")]

	var converted float64
	if from > 0 && to > 0 {
		converted = value * from / to
	}

	return domain.Results{
		"convertedValue": Round4(converted),
	}
}
