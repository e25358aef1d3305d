package calc

import (
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/formula"
)

// loanCalculator serves mortgage, loan and auto-loan, which share a form.
type loanCalculator struct{}

func (loanCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcMortgage, domain.CalcLoan, domain.CalcAutoLoan}
}

func (loanCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcLoan) }

func (loanCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	amount := r.number("amount")
	rate := r.number("rate")
	years := r.number("years")
	if r.err != nil {
		return nil, r.err
	}

	s := formula.LoanSummary(amount, rate, years)
	return domain.LoanResult{
		Principal:      amount,
		AnnualRate:     rate,
		Years:          years,
		MonthlyPayment: s.MonthlyPayment,
		TotalPayment:   s.TotalPayment,
		TotalInterest:  s.TotalInterest,
	}, nil
}
