package formula

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calchub/internal/domain"
)

func TestPercentage(t *testing.T) {
	got := Percentage(domain.Inputs{"value": 150.0, "percentage": 15.0, "total": 600.0})
	want := domain.Results{
		"result":       22.5,
		"total":        172.5,
		"percentageOf": 25.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Percentage() mismatch (-want +got):\n%s", diff)
	}
}

func TestPercentageWithoutTotal(t *testing.T) {
	got := Percentage(domain.Inputs{"value": 150.0, "percentage": 15.0})
	// With no base to compare against, percentageOf degrades to
	// value*100 rather than dividing by zero.
	if got["percentageOf"] != 15000.0 {
		t.Errorf("percentageOf = %v, want 15000", got["percentageOf"])
	}
}

func TestScientific(t *testing.T) {
	got := Scientific(domain.Inputs{"expression": "2+2*2"})
	want := domain.Results{"result": 6.0, "expression": "2+2*2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scientific() mismatch (-want +got):\n%s", diff)
	}
}

func TestScientificErrorSentinel(t *testing.T) {
	cases := []string{"2+", "2/(1-1)", "", "()"}
	for _, expr := range cases {
		got := Scientific(domain.Inputs{"expression": expr})
		if got["result"] != "Error" {
			t.Errorf("Scientific(%q) result = %v, want Error", expr, got["result"])
		}
		if got["expression"] != expr {
			t.Errorf("Scientific(%q) should echo the expression, got %v", expr, got["expression"])
		}
	}
}

func TestScientificTrimsFloatNoise(t *testing.T) {
	got := Scientific(domain.Inputs{"expression": "0.1+0.2"})
	if got["result"] != 0.3 {
		t.Errorf("result = %v, want 0.3", got["result"])
	}
}
