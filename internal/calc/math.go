package calc

import (
	"math/rand/v2"
	"sync"

	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/expr"
	"github.com/aalvaropc/calckit/internal/formula"
)

type percentageCalculator struct{}

func (percentageCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcPercentage}
}
func (percentageCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcPercentage) }

func (percentageCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	pct := r.number("percentage")
	value := r.number("value")
	if r.err != nil {
		return nil, r.err
	}
	return domain.PercentageResult{
		Result:     formula.PercentageOf(value, pct),
		Percentage: pct,
		Of:         value,
	}, nil
}

type triangleCalculator struct{}

func (triangleCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcTriangle}
}
func (triangleCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcTriangle) }

func (triangleCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	a, b, c := r.number("a"), r.number("b"), r.number("c")
	if r.err != nil {
		return nil, r.err
	}
	t := formula.TriangleMetrics(a, b, c)
	return domain.TriangleResult{A: a, B: b, C: c, Perimeter: t.Perimeter, Area: t.Area}, nil
}

type fractionParams struct {
	Op string `validate:"required,fraction_op"`
}

type fractionCalculator struct{}

func (fractionCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcFraction}
}
func (fractionCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcFraction) }

func (fractionCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	n1, d1 := r.number("n1"), r.number("d1")
	opText := r.text("op")
	n2, d2 := r.number("n2"), r.number("d2")
	if r.err != nil {
		return nil, r.err
	}
	if err := checkParams(id, fractionParams{Op: opText}, domain.KindInvalidInput, domain.ErrInvalidInput); err != nil {
		return nil, err
	}

	op, _ := formula.ParseFractionOperator(opText)
	f := formula.Simplify(formula.FractionOp(n1, d1, n2, d2, op))
	return domain.FractionResult{
		Op:          string(op),
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
		Value:       f.Value,
	}, nil
}

type randomParams struct {
	Min   int
	Max   int `validate:"gtfield=Min"`
	Count int `validate:"min=1,max=100"`
}

// randomCalculator draws from rng when set, guarded by mu since a
// *rand.Rand is not safe for concurrent use.
type randomCalculator struct {
	rng *rand.Rand
	mu  sync.Mutex
}

func (*randomCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcRandom}
}
func (*randomCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcRandom) }

func (c *randomCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	p := randomParams{
		Min:   r.integer("min"),
		Max:   r.integer("max"),
		Count: r.optionalInteger("count", 1),
	}
	if r.err != nil {
		return nil, r.err
	}
	if err := checkParams(id, p, domain.KindInvalidInput, domain.ErrInvalidInput); err != nil {
		return nil, err
	}

	c.mu.Lock()
	nums := formula.RandomInts(c.rng, p.Min, p.Max, p.Count)
	c.mu.Unlock()

	return domain.RandomResult{Min: p.Min, Max: p.Max, Numbers: nums}, nil
}

// expressionCalculator backs the scientific calculator's expression line.
type expressionCalculator struct{}

func (expressionCalculator) IDs() []domain.CalculatorID {
	return []domain.CalculatorID{domain.CalcScientific}
}
func (expressionCalculator) Fields() []domain.Field { return catalog.Form(domain.CalcScientific) }

// Calculate turns a malformed expression into an ExpressionError record
// instead of failing.
func (expressionCalculator) Calculate(id domain.CalculatorID, in domain.InputSet) (domain.Result, error) {
	r := newReader(id, in)
	src := r.text("expression")
	if r.err != nil {
		return nil, r.err
	}

	v, err := expr.Eval(src)
	if err != nil {
		return domain.ExpressionError{Expression: src, Message: InvalidExpressionMessage}, nil
	}
	return domain.ExpressionResult{Expression: src, Value: v}, nil
}
