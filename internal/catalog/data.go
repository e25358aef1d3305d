package catalog

import (
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/formula"
)

var categories = []domain.Category{
	{
		ID:          "financial",
		Name:        "Financial Calculators",
		Description: "Mortgage, loan, investment and retirement planning tools",
		Calculators: []domain.Descriptor{
			{ID: domain.CalcMortgage, Name: "Mortgage Calculator", Description: "Calculate monthly mortgage payments", Category: "financial", Icon: "home", Featured: true},
			{ID: domain.CalcLoan, Name: "Loan Calculator", Description: "Calculate loan payments and interest", Category: "financial", Icon: "banknote"},
			{ID: domain.CalcAutoLoan, Name: "Auto Loan Calculator", Description: "Calculate car loan payments", Category: "financial", Icon: "car", Featured: true},
			{ID: "interest", Name: "Interest Calculator", Description: "Calculate compound interest", Category: "financial", Icon: "trending-up"},
			{ID: "investment", Name: "Investment Calculator", Description: "Calculate investment returns", Category: "financial", Icon: "chart-line"},
			{ID: "retirement", Name: "Retirement Calculator", Description: "Plan for retirement savings", Category: "financial", Icon: "piggy-bank"},
			{ID: "salary", Name: "Salary Calculator", Description: "Calculate take-home pay", Category: "financial", Icon: "wallet"},
		},
	},
	{
		ID:          "health",
		Name:        "Fitness & Health",
		Description: "BMI, calorie, pregnancy and health monitoring tools",
		Calculators: []domain.Descriptor{
			{ID: domain.CalcBMI, Name: "BMI Calculator", Description: "Calculate body mass index", Category: "health", Icon: "scale", Featured: true},
			{ID: "calorie", Name: "Calorie Calculator", Description: "Calculate daily calorie needs", Category: "health", Icon: "flame", Featured: true},
			{ID: "body-fat", Name: "Body Fat Calculator", Description: "Calculate body fat percentage", Category: "health", Icon: "activity"},
			{ID: "bmr", Name: "BMR Calculator", Description: "Calculate basal metabolic rate", Category: "health", Icon: "heart"},
			{ID: "ideal-weight", Name: "Ideal Weight Calculator", Description: "Calculate ideal body weight", Category: "health", Icon: "target"},
			{ID: "pregnancy", Name: "Pregnancy Calculator", Description: "Calculate due date and pregnancy stages", Category: "health", Icon: "baby"},
		},
	},
	{
		ID:          "math",
		Name:        "Math Calculators",
		Description: "Scientific, fraction, percentage and geometry tools",
		Calculators: []domain.Descriptor{
			{ID: domain.CalcScientific, Name: "Scientific Calculator", Description: "Advanced mathematical calculations", Category: "math", Icon: "calculator", Featured: true},
			{ID: domain.CalcFraction, Name: "Fraction Calculator", Description: "Calculate with fractions", Category: "math", Icon: "divide"},
			{ID: domain.CalcPercentage, Name: "Percentage Calculator", Description: "Calculate percentages easily", Category: "math", Icon: "percent", Featured: true},
			{ID: domain.CalcTriangle, Name: "Triangle Calculator", Description: "Calculate triangle properties", Category: "math", Icon: "triangle"},
			{ID: domain.CalcRandom, Name: "Random Number Generator", Description: "Generate random numbers", Category: "math", Icon: "shuffle"},
			{ID: "standard-deviation", Name: "Standard Deviation Calculator", Description: "Calculate statistical measures", Category: "math", Icon: "bar-chart"},
		},
	},
	{
		ID:          "other",
		Name:        "Other Calculators",
		Description: "Age, date, time, GPA and utility calculators",
		Calculators: []domain.Descriptor{
			{ID: domain.CalcAge, Name: "Age Calculator", Description: "Calculate your exact age", Category: "other", Icon: "calendar", Featured: true},
			{ID: "date", Name: "Date Calculator", Description: "Calculate dates and durations", Category: "other", Icon: "calendar-days"},
			{ID: "time", Name: "Time Calculator", Description: "Calculate time differences", Category: "other", Icon: "clock"},
			{ID: "gpa", Name: "GPA Calculator", Description: "Calculate grade point average", Category: "other", Icon: "graduation-cap"},
			{ID: "password", Name: "Password Generator", Description: "Generate secure passwords", Category: "other", Icon: "key"},
			{ID: domain.CalcConversion, Name: "Unit Converter", Description: "Convert between units", Category: "other", Icon: "arrow-right-left"},
		},
	},
}

var loanFields = []domain.Field{
	{Name: "amount", Label: "Loan Amount ($)", Placeholder: "100000", Type: domain.FieldNumber},
	{Name: "rate", Label: "Interest Rate (%)", Placeholder: "5.5", Type: domain.FieldNumber},
	{Name: "years", Label: "Loan Term (Years)", Placeholder: "30", Type: domain.FieldNumber},
}

var forms = map[domain.CalculatorID][]domain.Field{
	domain.CalcMortgage: loanFields,
	domain.CalcLoan:     loanFields,
	domain.CalcAutoLoan: loanFields,
	domain.CalcBMI: {
		{Name: "height", Label: "Height (feet)", Placeholder: "5.8", Type: domain.FieldNumber},
		{Name: "weight", Label: "Weight (lbs)", Placeholder: "150", Type: domain.FieldNumber},
	},
	domain.CalcPercentage: {
		{Name: "percentage", Label: "Percentage (%)", Placeholder: "25", Type: domain.FieldNumber},
		{Name: "value", Label: "Of Value", Placeholder: "200", Type: domain.FieldNumber},
	},
	domain.CalcAge: {
		{Name: "birthDate", Label: "Birth Date", Placeholder: "1990-01-31", Type: domain.FieldDate},
	},
	domain.CalcTriangle: {
		{Name: "a", Label: "Side A", Placeholder: "3", Type: domain.FieldNumber},
		{Name: "b", Label: "Side B", Placeholder: "4", Type: domain.FieldNumber},
		{Name: "c", Label: "Side C", Placeholder: "5", Type: domain.FieldNumber},
	},
	domain.CalcConversion: {
		{Name: "value", Label: "Value", Placeholder: "10", Type: domain.FieldNumber},
		{Name: "from", Label: "From", Placeholder: "meters", Type: domain.FieldChoice, Choices: unitChoices},
		{Name: "to", Label: "To", Placeholder: "feet", Type: domain.FieldChoice, Choices: unitChoices},
	},
	domain.CalcRandom: {
		{Name: "min", Label: "Minimum", Placeholder: "1", Type: domain.FieldNumber},
		{Name: "max", Label: "Maximum", Placeholder: "100", Type: domain.FieldNumber},
		{Name: "count", Label: "How many", Placeholder: "1", Type: domain.FieldNumber},
	},
	domain.CalcFraction: {
		{Name: "n1", Label: "First numerator", Placeholder: "1", Type: domain.FieldNumber},
		{Name: "d1", Label: "First denominator", Placeholder: "2", Type: domain.FieldNumber},
		{Name: "op", Label: "Operation", Placeholder: "add", Type: domain.FieldChoice, Choices: []string{"add", "subtract", "multiply", "divide"}},
		{Name: "n2", Label: "Second numerator", Placeholder: "1", Type: domain.FieldNumber},
		{Name: "d2", Label: "Second denominator", Placeholder: "3", Type: domain.FieldNumber},
	},
	domain.CalcScientific: {
		{Name: "expression", Label: "Expression", Placeholder: "(2 + 3) × 4", Type: domain.FieldText},
	},
}

var unitChoices = formula.Units()
