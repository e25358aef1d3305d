package calc

import (
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/formula"
)

type bmiCalculator struct{}

func (bmiCalculator) IDs() []domain.CalculatorID { return []domain.CalculatorID{domain.CalcBMI} }
func (bmiCalculator) Fields() []domain.Field     { return catalog.Form(domain.CalcBMI) }

func (bmiCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	height := r.number("height")
	weight := r.number("weight")
	if r.err != nil {
		return nil, r.err
	}

	bmi, category := formula.BMI(height, weight)
	return domain.BMIResult{BMI: bmi, Category: category}, nil
}
