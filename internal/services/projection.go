package services

import (
	"strings"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/formula"
)

// scheduleCap bounds amortization schedules at 30 years of months.
const scheduleCap = 360

// LoanSchedule replays an amortization month by month: interest accrues
// on the running balance, the remainder of the payment retires principal,
// and the series stops at a zero balance or the cap.
func LoanSchedule(principal, annualRate float64, months int, payment float64) domain.Projection {
	monthlyRate := annualRate / 100 / 12
	if months > scheduleCap {
		months = scheduleCap
	}

	var points []domain.SchedulePoint
	balance := principal
	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		balance -= principalPaid
		if balance < 0 {
			balance = 0
		}
		points = append(points, domain.SchedulePoint{
			Month:     month,
			Balance:   formula.Round2(balance),
			Principal: formula.Round2(principalPaid),
			Interest:  formula.Round2(interest),
			TotalPaid: formula.Round2(payment * float64(month)),
		})
		if balance <= 0 {
			break
		}
	}

	return domain.Projection{
		Type:  "loan",
		Title: "Loan Payment Schedule",
		Data:  points,
	}
}

// GrowthProjection samples an investment's balance annually while
// compounding monthly with a recurring contribution.
func GrowthProjection(principal, monthlyContribution, annualRate float64, years int) domain.Projection {
	monthlyRate := annualRate / 100 / 12

	var points []domain.GrowthPoint
	balance := principal
	for month := 1; month <= years*12; month++ {
		balance = balance*(1+monthlyRate) + monthlyContribution
		if month%12 != 0 {
			continue
		}
		contributions := principal + monthlyContribution*float64(month)
		points = append(points, domain.GrowthPoint{
			Year:          month / 12,
			Balance:       formula.Round2(balance),
			Contributions: formula.Round2(contributions),
			Growth:        formula.Round2(balance - contributions),
		})
	}

	return domain.Projection{
		Type:  "investment",
		Title: "Investment Growth Projection",
		Data:  points,
	}
}

// ProjectionFor derives a series from a finished calculation when the
// calculator supports one: loan-family calculators get a payment
// schedule, investment-family calculators a growth projection. Returns
// nil otherwise.
func ProjectionFor(def *domain.CalculatorDefinition, inputs domain.Inputs, results domain.Results) *domain.Projection {
	if def == nil || def.Category != domain.CategoryFinancial {
		return nil
	}
	name := strings.ToLower(def.Name)

	switch {
	case strings.Contains(name, "loan") || strings.Contains(name, "mortgage"):
		principal := formula.Number(inputs, "principal")
		rate := formula.Number(inputs, "rate")
		months := int(formula.Number(inputs, "years") * 12)
		payment := formula.Number(domain.Inputs(results), "monthlyPayment")
		if principal <= 0 || rate <= 0 || months <= 0 || payment <= 0 {
			return nil
		}
		p := LoanSchedule(principal, rate, months, payment)
		return &p

	case strings.Contains(name, "investment") || strings.Contains(name, "compound"):
		principal := formula.Number(inputs, "principal")
		rate := formula.Number(inputs, "rate")
		years := int(formula.Number(inputs, "years"))
		if principal <= 0 || rate <= 0 || years <= 0 {
			return nil
		}
		p := GrowthProjection(principal, formula.Number(inputs, "monthlyContribution"), rate, years)
		return &p
	}
	return nil
}
