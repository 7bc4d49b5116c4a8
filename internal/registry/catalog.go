package registry

import "github.com/doeshing/calchub/internal/domain"

func numberField(name, label, placeholder string, required bool) domain.FieldSpec {
	return domain.FieldSpec{
		Name:        name,
		Label:       label,
		Type:        domain.FieldNumber,
		Placeholder: placeholder,
		Required:    required,
	}
}

// catalog declares every calculator the registry serves. Order here is
// the display order.
func catalog() []domain.CalculatorDefinition {
	return []domain.CalculatorDefinition{
		{
			ID:          "mortgage",
			Category:    domain.CategoryFinancial,
			Name:        "Mortgage Calculator",
			Description: "Monthly payment, total payment, and total interest for a fixed-rate mortgage",
			Icon:        "Home",
			Fields: []domain.FieldSpec{
				numberField("principal", "Loan Amount", "300000", true),
				numberField("rate", "Annual Interest Rate (%)", "6.5", true),
				numberField("years", "Term (years)", "30", true),
			},
		},
		{
			ID:          "loan",
			Category:    domain.CategoryFinancial,
			Name:        "Loan Calculator",
			Description: "Amortized payment breakdown for personal and auto loans",
			Icon:        "Banknote",
			Fields: []domain.FieldSpec{
				numberField("principal", "Loan Amount", "25000", true),
				numberField("rate", "Annual Interest Rate (%)", "7.9", true),
				numberField("years", "Term (years)", "5", true),
			},
		},
		{
			ID:          "amortization",
			Category:    domain.CategoryFinancial,
			Name:        "Amortization Calculator",
			Description: "Full-term payment and interest totals for any amortizing loan",
			Icon:        "Table",
			Fields: []domain.FieldSpec{
				numberField("principal", "Principal", "200000", true),
				numberField("rate", "Annual Interest Rate (%)", "5.5", true),
				numberField("years", "Term (years)", "15", true),
			},
		},
		{
			ID:          "compound-interest",
			Category:    domain.CategoryFinancial,
			Name:        "Compound Interest Calculator",
			Description: "Growth of a principal with annual compounding",
			Icon:        "TrendingUp",
			Fields: []domain.FieldSpec{
				numberField("principal", "Principal", "10000", true),
				numberField("rate", "Annual Rate (%)", "5", true),
				numberField("years", "Years", "10", true),
			},
		},
		{
			ID:          "investment",
			Category:    domain.CategoryFinancial,
			Name:        "Investment Growth Calculator",
			Description: "Monthly-compounded growth with recurring contributions",
			Icon:        "LineChart",
			Fields: []domain.FieldSpec{
				numberField("principal", "Initial Amount", "5000", true),
				numberField("monthlyContribution", "Monthly Contribution", "250", false),
				numberField("rate", "Annual Return (%)", "7", true),
				numberField("years", "Years", "20", true),
			},
		},
		{
			ID:          "mortgage-payoff",
			Category:    domain.CategoryFinancial,
			Name:        "Mortgage Payoff Calculator",
			Description: "Months and interest saved by paying extra each month",
			Icon:        "CalendarCheck",
			Fields: []domain.FieldSpec{
				numberField("principal", "Loan Balance", "250000", true),
				numberField("rate", "Annual Interest Rate (%)", "6.0", true),
				numberField("years", "Remaining Term (years)", "25", true),
				numberField("extraPayment", "Extra Monthly Payment", "200", false),
			},
		},
		{
			ID:          "house-affordability",
			Category:    domain.CategoryFinancial,
			Name:        "House Affordability Calculator",
			Description: "Maximum home price under the 28%/36% debt rules",
			Icon:        "HousePlus",
			Fields: []domain.FieldSpec{
				numberField("monthlyIncome", "Gross Monthly Income", "8000", true),
				numberField("otherDebts", "Other Monthly Debts", "500", false),
				numberField("downPayment", "Down Payment", "60000", false),
				numberField("rate", "Annual Interest Rate (%)", "6.5", true),
			},
		},
		{
			ID:          "rent-affordability",
			Category:    domain.CategoryFinancial,
			Name:        "Rent Affordability Calculator",
			Description: "Recommended and maximum rent for your income",
			Icon:        "KeyRound",
			Fields: []domain.FieldSpec{
				numberField("monthlyIncome", "Monthly Income", "5000", true),
				numberField("monthlyExpenses", "Monthly Expenses", "1500", false),
				numberField("savingsRate", "Savings Rate (%)", "20", false),
			},
		},
		{
			ID:          "debt-to-income",
			Category:    domain.CategoryFinancial,
			Name:        "Debt-to-Income Calculator",
			Description: "Front-end and back-end ratios with qualification tier",
			Icon:        "Scale",
			Fields: []domain.FieldSpec{
				numberField("monthlyIncome", "Gross Monthly Income", "7000", true),
				numberField("mortgagePayment", "Monthly Housing Payment", "1800", true),
				numberField("otherDebts", "Other Monthly Debts", "600", false),
			},
		},
		{
			ID:          "rental-property",
			Category:    domain.CategoryFinancial,
			Name:        "Rental Property Calculator",
			Description: "Cash flow, cash-on-cash return, cap rate, and the 1% rule",
			Icon:        "Building",
			Fields: []domain.FieldSpec{
				numberField("purchasePrice", "Purchase Price", "320000", true),
				numberField("downPayment", "Down Payment", "64000", true),
				numberField("rate", "Annual Interest Rate (%)", "6.8", true),
				numberField("monthlyRent", "Monthly Rent", "2600", true),
				numberField("monthlyExpenses", "Monthly Expenses", "700", false),
			},
		},
		{
			ID:          "refinance",
			Category:    domain.CategoryFinancial,
			Name:        "Refinance Calculator",
			Description: "Monthly savings and break-even point of a refinance",
			Icon:        "RefreshCw",
			Fields: []domain.FieldSpec{
				numberField("currentBalance", "Current Balance", "220000", true),
				numberField("currentRate", "Current Rate (%)", "7.1", true),
				numberField("newRate", "New Rate (%)", "5.9", true),
				numberField("remainingYears", "Remaining Term (years)", "22", true),
				numberField("closingCosts", "Closing Costs", "4500", false),
			},
		},
		{
			ID:          "apr",
			Category:    domain.CategoryFinancial,
			Name:        "APR Calculator",
			Description: "Approximate annual percentage rate including fees",
			Icon:        "Percent",
			Fields: []domain.FieldSpec{
				numberField("loanAmount", "Loan Amount", "150000", true),
				numberField("rate", "Note Rate (%)", "6.25", true),
				numberField("years", "Term (years)", "30", true),
				numberField("fees", "Up-front Fees", "3000", false),
			},
		},
		{
			ID:          "bmi",
			Category:    domain.CategoryHealth,
			Name:        "BMI Calculator",
			Description: "Body mass index with weight category",
			Icon:        "HeartPulse",
			Fields: []domain.FieldSpec{
				numberField("weight", "Weight", "70", true),
				numberField("height", "Height", "175", true),
				{
					Name:         "unit",
					Label:        "Units",
					Type:         domain.FieldSelect,
					DefaultValue: "metric",
					Options: []domain.Option{
						{Value: "metric", Label: "Metric (kg, cm)"},
						{Value: "imperial", Label: "Imperial (lb, in)"},
					},
				},
			},
		},
		{
			ID:          "bmr",
			Category:    domain.CategoryHealth,
			Name:        "Calorie Calculator",
			Description: "Harris-Benedict basal metabolic rate with activity tiers",
			Icon:        "Flame",
			Fields: []domain.FieldSpec{
				{
					Name:         "gender",
					Label:        "Gender",
					Type:         domain.FieldSelect,
					DefaultValue: "male",
					Options: []domain.Option{
						{Value: "male", Label: "Male"},
						{Value: "female", Label: "Female"},
					},
				},
				numberField("weight", "Weight (kg)", "70", true),
				numberField("height", "Height (cm)", "175", true),
				numberField("age", "Age (years)", "30", true),
			},
		},
		{
			ID:          "age",
			Category:    domain.CategoryOther,
			Name:        "Age Calculator",
			Description: "Exact age in years, months, and days from a birth date",
			Icon:        "Cake",
			Fields: []domain.FieldSpec{
				{
					Name:     "birthDate",
					Label:    "Birth Date",
					Type:     domain.FieldDate,
					Required: true,
				},
				{
					Name:        "asOf",
					Label:       "As Of",
					Type:        domain.FieldDate,
					Description: "Defaults to today",
				},
			},
		},
		{
			ID:          "percentage",
			Category:    domain.CategoryMath,
			Name:        "Percentage Calculator",
			Description: "Percent of a value and value as a percent of a total",
			Icon:        "PercentCircle",
			Fields: []domain.FieldSpec{
				numberField("value", "Value", "150", true),
				numberField("percentage", "Percentage (%)", "15", true),
				numberField("total", "Of Total (optional)", "", false),
			},
		},
		{
			ID:          "scientific",
			Category:    domain.CategoryMath,
			Name:        "Scientific Calculator",
			Description: "Evaluate arithmetic expressions with + - * / and parentheses",
			Icon:        "SquareFunction",
			Fields: []domain.FieldSpec{
				{
					Name:        "expression",
					Label:       "Expression",
					Type:        domain.FieldText,
					Placeholder: "(2+3)*4",
					Required:    true,
				},
			},
		},
		{
			ID:          "currency",
			Category:    domain.CategoryOther,
			Name:        "Currency Converter",
			Description: "Convert between major currencies at fixed snapshot rates",
			Icon:        "DollarSign",
			Fields: []domain.FieldSpec{
				numberField("amount", "Amount", "100", true),
				currencyField("from", "From", "USD"),
				currencyField("to", "To", "EUR"),
			},
		},
		{
			ID:          "unit-length",
			Category:    domain.CategoryOther,
			Name:        "Length Converter",
			Description: "Convert lengths through their meter equivalents",
			Icon:        "Ruler",
			Fields: []domain.FieldSpec{
				numberField("value", "Value", "1", true),
				lengthField("from", "From", "m"),
				lengthField("to", "To", "ft"),
			},
		},
	}
}

func currencyField(name, label, defaultValue string) domain.FieldSpec {
	return domain.FieldSpec{
		Name:         name,
		Label:        label,
		Type:         domain.FieldSelect,
		DefaultValue: defaultValue,
		Options: []domain.Option{
			{Value: "USD", Label: "US Dollar"},
			{Value: "EUR", Label: "Euro"},
			{Value: "GBP", Label: "British Pound"},
			{Value: "JPY", Label: "Japanese Yen"},
			{Value: "CAD", Label: "Canadian Dollar"},
			{Value: "AUD", Label: "Australian Dollar"},
			{Value: "CHF", Label: "Swiss Franc"},
			{Value: "CNY", Label: "Chinese Yuan"},
			{Value: "INR", Label: "Indian Rupee"},
		},
	}
}

func lengthField(name, label, defaultValue string) domain.FieldSpec {
	return domain.FieldSpec{
		Name:         name,
		Label:        label,
		Type:         domain.FieldSelect,
		DefaultValue: defaultValue,
		Options: []domain.Option{
			{Value: "mm", Label: "Millimeters"},
			{Value: "cm", Label: "Centimeters"},
			{Value: "m", Label: "Meters"},
			{Value: "km", Label: "Kilometers"},
			{Value: "in", Label: "Inches"},
			{Value: "ft", Label: "Feet"},
			{Value: "yd", Label: "Yards"},
			{Value: "mi", Label: "Miles"},
		},
	}
}
