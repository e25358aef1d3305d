package formula

import "math"

// Loan is a payment together with the totals derived from it.
type Loan struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Payments       float64
}

// LoanPayment returns the fixed monthly payment of an amortized loan.
// A zero rate falls back to principal spread evenly over the payments.
func LoanPayment(principal, annualRatePercent, years float64) float64 {
	r := annualRatePercent / 100 / 12
	n := years * 12

	if r == 0 {
		return principal / n
	}

	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// LoanSummary computes the payment plus total paid and total interest.
func LoanSummary(principal, annualRatePercent, years float64) Loan {
	payment := LoanPayment(principal, annualRatePercent, years)
	n := years * 12
	total := payment * n
	return Loan{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
		Payments:       n,
	}
}
