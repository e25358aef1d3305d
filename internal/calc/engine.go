package calc

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Engine routes identifiers to registered calculators.
type Engine struct {
	calculators map[domain.CalculatorID]Calculator
}

// NewEngine creates an Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{calculators: make(map[domain.CalculatorID]Calculator)}
}

// Register adds c under each identifier it serves.
// Register panics if any of those identifiers is already taken.
func (e *Engine) Register(c Calculator) {
	for _, id := range c.IDs() {
		if _, exists := e.calculators[id]; exists {
			panic(fmt.Sprintf("calc: calculator %q already registered", id))
		}
	}
	for _, id := range c.IDs() {
		e.calculators[id] = c
	}
}

// Has reports whether a formula is registered for id.
func (e *Engine) Has(id domain.CalculatorID) bool {
	_, ok := e.calculators[id]
	return ok
}

// IDs returns the registered identifiers, sorted.
func (e *Engine) IDs() []domain.CalculatorID {
	out := make([]domain.CalculatorID, 0, len(e.calculators))
	for id := range e.calculators {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fields returns the inputs the calculator for id reads, or nil.
func (e *Engine) Fields(id domain.CalculatorID) []domain.Field {
	c, ok := e.calculators[id]
	if !ok {
		return nil
	}
	return c.Fields()
}

// Dispatch runs the calculator registered for id. Identifiers without one
// yield a ComingSoon result and no error.
func (e *Engine) Dispatch(id domain.CalculatorID, inputs domain.InputSet) (domain.Result, error) {
	c, ok := e.calculators[id]
	if !ok {
		return domain.ComingSoon{Message: ComingSoonMessage}, nil
	}
	return c.Calculate(id, inputs)
}

type engineOptions struct {
	now func() time.Time
	rng *rand.Rand
}

// Option configures NewDefaultEngine.
type Option func(*engineOptions)

// WithClock sets the clock used as "today" by the age calculator.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRand sets the source of the random number generator.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// NewDefaultEngine returns an Engine with every built-in calculator.
func NewDefaultEngine(opts ...Option) *Engine {
	o := engineOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	e := NewEngine()
	e.Register(loanCalculator{})
	e.Register(bmiCalculator{})
	e.Register(percentageCalculator{})
	e.Register(ageCalculator{now: o.now})
	e.Register(triangleCalculator{})
	e.Register(conversionCalculator{})
	e.Register(&randomCalculator{rng: o.rng})
	e.Register(fractionCalculator{})
	e.Register(expressionCalculator{})
	return e
}
