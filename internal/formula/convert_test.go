package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calchub/internal/domain"
)

func TestCurrencyConvert(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Inputs
		want domain.Results
	}{
		{
			name: "usd to eur",
			in:   domain.Inputs{"amount": 100.0, "from": "USD", "to": "EUR"},
			want: domain.Results{"convertedAmount": 85.0, "rate": 0.85},
		},
		{
			name: "eur to usd inverts",
			in:   domain.Inputs{"amount": 100.0, "from": "EUR", "to": "USD"},
			want: domain.Results{"convertedAmount": 117.65, "rate": 1.1765},
		},
		{
			name: "same currency is identity",
			in:   domain.Inputs{"amount": 42.5, "from": "JPY", "to": "JPY"},
			want: domain.Results{"convertedAmount": 42.5, "rate": 1.0},
		},
		{
			name: "unknown code yields zero",
			in:   domain.Inputs{"amount": 100.0, "from": "XXX", "to": "EUR"},
			want: domain.Results{"convertedAmount": 0.0, "rate": 0.0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CurrencyConvert(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CurrencyConvert() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLengthConvert(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Inputs
		want float64
	}{
		{"meters to feet", domain.Inputs{"value": 1.0, "from": "m", "to": "ft"}, 3.2808},
		{"centimeters to meters", domain.Inputs{"value": 100.0, "from": "cm", "to": "m"}, 1.0},
		{"miles to kilometers", domain.Inputs{"value": 1.0, "from": "mi", "to": "km"}, 1.6093},
		{"inches to centimeters", domain.Inputs{"value": 10.0, "from": "in", "to": "cm"}, 25.4},
		{"unknown unit yields zero", domain.Inputs{"value": 5.0, "from": "furlong", "to": "m"}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LengthConvert(tc.in)
			if got["convertedValue"] != tc.want {
				t.Errorf("convertedValue = %v, want %v", got["convertedValue"], tc.want)
			}
		})
	}
}
