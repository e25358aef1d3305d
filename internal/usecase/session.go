package usecase

import (
	"context"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Session holds the inputs and latest result of one open calculator.
// A failed calculation leaves the previous result in place.
type Session struct {
	calc   *Calculate
	id     domain.CalculatorID
	inputs domain.InputSet
	result domain.Result
}

func NewSession(calc *Calculate, id domain.CalculatorID) *Session {
	return &Session{calc: calc, id: id, inputs: domain.InputSet{}}
}

func (s *Session) ID() domain.CalculatorID { return s.id }

func (s *Session) Set(field, value string) {
	s.inputs = s.inputs.Set(field, value)
}

func (s *Session) Inputs() domain.InputSet { return s.inputs.Clone() }

// Result returns the latest successful result, or nil.
func (s *Session) Result() domain.Result { return s.result }

// Calculate runs the calculator on the current inputs and replaces the result
// when it succeeds.
func (s *Session) Calculate(ctx context.Context) (domain.Result, error) {
	res, err := s.calc.Execute(ctx, s.id, s.inputs.Clone())
	if err != nil {
		return s.result, err
	}
	s.result = res
	return res, nil
}

// Reset clears inputs and result, as when navigating to another calculator.
func (s *Session) Reset() {
	s.inputs = domain.InputSet{}
	s.result = nil
}
