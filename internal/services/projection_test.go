package services

import (
	"testing"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/registry"
)

func TestLoanSchedule(t *testing.T) {
	p := LoanSchedule(1000, 12, 12, 88.85)
	if p.Type != "loan" {
		t.Errorf("Type = %q, want loan", p.Type)
	}

	points := p.Data.([]domain.SchedulePoint)
	if len(points) != 12 {
		t.Fatalf("schedule has %d points, want 12", len(points))
	}

	first := points[0]
	if first.Month != 1 || first.Interest != 10.0 || first.Principal != 78.85 || first.Balance != 921.15 {
		t.Errorf("first point = %+v, want month 1, interest 10, principal 78.85, balance 921.15", first)
	}

	last := points[len(points)-1]
	if last.Balance != 0 {
		t.Errorf("final balance = %v, want 0", last.Balance)
	}
	if last.TotalPaid != 1066.2 {
		t.Errorf("final totalPaid = %v, want 1066.2", last.TotalPaid)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Balance > points[i-1].Balance {
			t.Errorf("balance rose from month %d to %d", points[i-1].Month, points[i].Month)
		}
	}
}

func TestLoanScheduleCapsAtThirtyYears(t *testing.T) {
	// A payment below the accruing interest never retires the balance.
	p := LoanSchedule(100000, 12, 1200, 500)
	points := p.Data.([]domain.SchedulePoint)
	if len(points) != 360 {
		t.Errorf("runaway schedule has %d points, want the 360 cap", len(points))
	}
}

func TestGrowthProjection(t *testing.T) {
	p := GrowthProjection(1000, 0, 12, 2)
	if p.Type != "investment" {
		t.Errorf("Type = %q, want investment", p.Type)
	}

	points := p.Data.([]domain.GrowthPoint)
	if len(points) != 2 {
		t.Fatalf("projection has %d points, want 2 annual samples", len(points))
	}

	if points[0].Year != 1 || points[0].Balance != 1126.83 || points[0].Contributions != 1000.0 {
		t.Errorf("year 1 = %+v, want balance 1126.83 on 1000 contributed", points[0])
	}
	if points[1].Year != 2 || points[1].Balance != 1269.73 {
		t.Errorf("year 2 = %+v, want balance 1269.73", points[1])
	}
	if points[0].Growth != 126.83 {
		t.Errorf("year 1 growth = %v, want 126.83", points[0].Growth)
	}
}

func TestGrowthProjectionCountsContributions(t *testing.T) {
	p := GrowthProjection(1000, 100, 0, 1)
	points := p.Data.([]domain.GrowthPoint)
	if points[0].Contributions != 2200.0 {
		t.Errorf("contributions = %v, want principal plus 12 monthly deposits", points[0].Contributions)
	}
	if points[0].Growth != 0.0 {
		t.Errorf("growth at zero rate = %v, want 0", points[0].Growth)
	}
}

func TestProjectionFor(t *testing.T) {
	reg := registry.New()
	loanInputs := domain.Inputs{"principal": 1000.0, "rate": 12.0, "years": 1.0}
	loanResults := reg.Compute("mortgage", loanInputs)

	t.Run("mortgage gets a payment schedule", func(t *testing.T) {
		p := ProjectionFor(reg.Definition("mortgage"), loanInputs, loanResults)
		if p == nil || p.Type != "loan" {
			t.Fatalf("projection = %v, want loan schedule", p)
		}
	})

	t.Run("investment gets a growth series", func(t *testing.T) {
		in := domain.Inputs{"principal": 1000.0, "monthlyContribution": 50.0, "rate": 7.0, "years": 10.0}
		p := ProjectionFor(reg.Definition("investment"), in, reg.Compute("investment", in))
		if p == nil || p.Type != "investment" {
			t.Fatalf("projection = %v, want investment growth", p)
		}
		if points := p.Data.([]domain.GrowthPoint); len(points) != 10 {
			t.Errorf("projection has %d points, want 10", len(points))
		}
	})

	t.Run("non-financial calculators have none", func(t *testing.T) {
		in := domain.Inputs{"weight": 70.0, "height": 175.0}
		if p := ProjectionFor(reg.Definition("bmi"), in, reg.Compute("bmi", in)); p != nil {
			t.Errorf("projection = %v, want nil", p)
		}
	})

	t.Run("nil definition has none", func(t *testing.T) {
		if p := ProjectionFor(nil, loanInputs, loanResults); p != nil {
			t.Errorf("projection = %v, want nil", p)
		}
	})

	t.Run("degenerate inputs have none", func(t *testing.T) {
		in := domain.Inputs{"principal": 0.0, "rate": 12.0, "years": 1.0}
		if p := ProjectionFor(reg.Definition("mortgage"), in, reg.Compute("mortgage", in)); p != nil {
			t.Errorf("projection = %v, want nil", p)
		}
	})
}
