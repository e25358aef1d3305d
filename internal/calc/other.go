package calc

import (
	"errors"
	"fmt"
	"time"

	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/formula"
)

type ageCalculator struct {
	now func() time.Time
}

func (ageCalculator) IDs() []domain.CalculatorID { return []domain.CalculatorID{domain.CalcAge} }
func (ageCalculator) Fields() []domain.Field     { return catalog.Form(domain.CalcAge) }

func (c ageCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	birth := r.date("birthDate")
	if r.err != nil {
		return nil, r.err
	}

	today := c.now().UTC()
	if birth.After(today) {
		return nil, &domain.OpError{
			Op:   "calc.input",
			Kind: domain.KindInvalidInput,
			Path: string(id),
			Err:  fmt.Errorf("%w: birthDate is in the future", domain.ErrInvalidInput),
		}
	}

	age := formula.AgeBreakdown(birth, today)
	return domain.AgeResult{Years: age.Years, Months: age.Months, Days: age.Days}, nil
}

type conversionParams struct {
	From string `validate:"unit"`
	To   string `validate:"unit"`
}

type conversionCalculator struct{}

func (conversionCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcConversion}
}
func (conversionCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcConversion) }

func (conversionCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	value := r.number("value")
	p := conversionParams{From: r.text("from"), To: r.text("to")}
	if r.err != nil {
		return nil, r.err
	}
	if err := checkParams(id, p, domain.KindUnsupported, domain.ErrUnsupportedConversion); err != nil {
		return nil, err
	}

	out, err := formula.Convert(value, p.From, p.To)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, domain.ErrUnsupportedConversion) {
			kind = domain.KindUnsupported
		}
		return nil, &domain.OpError{Op: "calc.convert", Kind: kind, Path: string(id), Err: err}
	}

	from, _ := formula.ParseUnit(p.From)
	to, _ := formula.ParseUnit(p.To)
	return domain.ConversionResult{Value: value, From: string(from), To: string(to), Result: out}, nil
}
