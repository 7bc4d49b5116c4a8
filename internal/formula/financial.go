package formula

import (
	"math"

	"github.com/doeshing/calchub/internal/domain"
)

// annuityPayment is the standard amortized-loan monthly payment.
// A zero rate degrades to straight-line principal; a zero term pays nothing.
func annuityPayment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 || principal <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	pow := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * pow / (pow - 1)
}

// invertAnnuity back-solves the principal supportable by a monthly payment.
func invertAnnuity(payment, monthlyRate float64, months int) float64 {
	if months <= 0 || payment <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return payment * float64(months)
	}
	pow := math.Pow(1+monthlyRate, float64(months))
	return payment * (pow - 1) / (monthlyRate * pow)
}

// AmortizedLoan serves the mortgage, loan, and amortization calculators:
// monthly payment, total payment, and total interest over the full term.
func AmortizedLoan(in domain.Inputs) domain.Results {
	principal := Number(in, "principal")
	rate := Number(in, "rate") / 100 / 12
	months := int(Number(in, "years") * 12)

	payment := annuityPayment(principal, rate, months)
	total := payment * float64(months)
	interest := total - principal
	if months <= 0 {
		total, interest = 0, 0
	}

	return domain.Results{
		"monthlyPayment": Round2(payment),
		"totalPayment":   Round2(total),
		"totalInterest":  Round2(interest),
	}
}

// CompoundInterest computes A = P(1+r)^t with annual compounding.
func CompoundInterest(in domain.Inputs) domain.Results {
	principal := Number(in, "principal")
	rate := Number(in, "rate") / 100
	years := Number(in, "years")

	amount := principal * math.Pow(1+rate, years)
	return domain.Results{
		"amount":   Round2(amount),
		"interest": Round2(amount - principal),
	}
}

// InvestmentGrowth compounds monthly with a recurring contribution.
func InvestmentGrowth(in domain.Inputs) domain.Results {
	principal := Number(in, "principal")
	contribution := Number(in, "monthlyContribution")
	monthlyRate := Number(in, "rate") / 100 / 12
	months := int(Number(in, "years") * 12)

	balance := principal
	for month := 0; month < months; month++ {
		balance = balance*(1+monthlyRate) + contribution
	}
	contributions := principal + contribution*float64(months)

	return domain.Results{
		"futureValue":        Round2(balance),
		"totalContributions": Round2(contributions),
		"growth":             Round2(balance - contributions),
	}
}

// MortgagePayoff replays the amortization month by month with an extra
// payment and reports months and interest saved against the baseline term.
// The loop is bounded by the original term, so it terminates for extra = 0.
func MortgagePayoff(in domain.Inputs) domain.Results {
	principal := Number(in, "principal")
	monthlyRate := Number(in, "rate") / 100 / 12
	term := int(Number(in, "years") * 12)
	extra := Number(in, "extraPayment")

	base := annuityPayment(principal, monthlyRate, term)
	balance := principal
	totalInterest := 0.0
	months := 0
	for balance > 0.01 && months < term {
		interest := balance * monthlyRate
		principalPaid := math.Min(base+extra-interest, balance)
		if principalPaid <= 0 {
			break
		}
		balance -= principalPaid
		totalInterest += interest
		months++
	}

	baselineInterest := base*float64(term) - principal
	if term <= 0 {
		baselineInterest = 0
	}

	return domain.Results{
		"payoffMonths":  months,
		"monthsSaved":   term - months,
		"totalInterest": Round2(totalInterest),
		"interestSaved": Round2(baselineInterest - totalInterest),
	}
}

// HouseAffordability applies the 28%/36% rules to monthly income and
// back-solves the supportable principal over a 30-year term.
func HouseAffordability(in domain.Inputs) domain.Results {
	income := Number(in, "monthlyIncome")
	debts := Number(in, "otherDebts")
	down := Number(in, "downPayment")
	monthlyRate := Number(in, "rate") / 100 / 12

	payment := math.Min(0.28*income, 0.36*income-debts)
	if payment < 0 {
		payment = 0
	}
	loan := invertAnnuity(payment, monthlyRate, 360)

	return domain.Results{
		"maxMonthlyPayment": Round2(payment),
		"maxLoanAmount":     Round2(loan),
		"maxHomePrice":      Round2(loan + down),
	}
}

// RentAffordability derives the recommended and maximum affordable rent.
func RentAffordability(in domain.Inputs) domain.Results {
	income := Number(in, "monthlyIncome")
	expenses := Number(in, "monthlyExpenses")
	savingsRate := Number(in, "savingsRate") / 100

	savings := income * savingsRate
	return domain.Results{
		"desiredSavings":  Round2(savings),
		"recommendedRent": Round2(0.30 * income),
		"maxRent":         Round2(income - expenses - savings),
	}
}

// DebtToIncome computes front-end and back-end ratios and the
// qualification tier for the back-end ratio.
func DebtToIncome(in domain.Inputs) domain.Results {
	income := Number(in, "monthlyIncome")
	mortgage := Number(in, "mortgagePayment")
	debts := Number(in, "otherDebts")

	var front, back float64
	if income > 0 {
		front = mortgage / income * 100
		back = (mortgage + debts) / income * 100
	}

	rating := "Poor"
	switch {
	case back <= 28:
		rating = "Excellent"
	case back <= 36:
		rating = "Good"
	case back <= 43:
		rating = "Fair"
	}

	return domain.Results{
		"frontEndRatio": Round2(front),
		"backEndRatio":  Round2(back),
		"rating":        rating,
	}
}

// RentalProperty evaluates a rental purchase: cash flow, cash-on-cash
// return, cap rate, and the one-percent rule.
func RentalProperty(in domain.Inputs) domain.Results {
	price := Number(in, "purchasePrice")
	down := Number(in, "downPayment")
	monthlyRate := Number(in, "rate") / 100 / 12
	rent := Number(in, "monthlyRent")
	expenses := Number(in, "monthlyExpenses")

	payment := annuityPayment(price-down, monthlyRate, 360)
	noi := rent - expenses
	cashFlow := noi - payment

	var coc, capRate, onePercent float64
	if down > 0 {
		coc = cashFlow * 12 / down * 100
	}
	if price > 0 {
		capRate = noi * 12 / price * 100
		onePercent = rent / price * 100
	}

	return domain.Results{
		"monthlyPayment":   Round2(payment),
		"cashFlow":         Round2(cashFlow),
		"cashOnCashReturn": Round2(coc),
		"capRate":          Round2(capRate),
		"onePercentRule":   Round2(onePercent),
	}
}

// Refinance compares old and new payments over the remaining term.
// Break-even is undefined when the refinance does not save money.
func Refinance(in domain.Inputs) domain.Results {
	balance := Number(in, "currentBalance")
	months := int(Number(in, "remainingYears") * 12)
	oldPayment := annuityPayment(balance, Number(in, "currentRate")/100/12, months)
	newPayment := annuityPayment(balance, Number(in, "newRate")/100/12, months)
	closing := Number(in, "closingCosts")

	savings := oldPayment - newPayment
	var breakEven any = "N/A"
	if savings > 0 {
		breakEven = int(math.Round(closing / savings))
	}

	return domain.Results{
		"currentPayment":  Round2(oldPayment),
		"newPayment":      Round2(newPayment),
		"monthlySavings":  Round2(savings),
		"breakEvenMonths": breakEven,
	}
}

// APR approximates the annual percentage rate from up-front fees.
// This is the simplified (totalPayments/netLoan - 1)/years form, not a
// true IRR solve.
func APR(in domain.Inputs) domain.Results {
	loan := Number(in, "loanAmount")
	years := Number(in, "years")
	months := int(years * 12)
	fees := Number(in, "fees")

	payment := annuityPayment(loan, Number(in, "rate")/100/12, months)
	totalPayments := payment * float64(months)
	net := loan - fees

	var apr float64
	if net > 0 && years > 0 {
		apr = (totalPayments/net - 1) / years * 100
	}

	return domain.Results{
		"monthlyPayment": Round2(payment),
		"totalPayments":  Round2(totalPayments),
		"apr":            Round2(apr),
	}
}
