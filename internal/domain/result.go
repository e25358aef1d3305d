package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// ResultKind discriminates the Result variants.
type ResultKind string

const (
	ResultLoan            ResultKind = "loan"
	ResultBMI             ResultKind = "bmi"
	ResultPercentage      ResultKind = "percentage"
	ResultAge             ResultKind = "age"
	ResultTriangle        ResultKind = "triangle"
	ResultConversion      ResultKind = "conversion"
	ResultRandom          ResultKind = "random"
	ResultFraction        ResultKind = "fraction"
	ResultExpression      ResultKind = "expression"
	ResultExpressionError ResultKind = "expression_error"
	ResultComingSoon      ResultKind = "coming_soon"
)

// Result is the output of one calculation. Every calculator kind has its own
// concrete type; there is no shared result shape.
type Result interface {
	Kind() ResultKind
	isResult()
}

type LoanResult struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	Years          float64 `json:"years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type PercentageResult struct {
	Result     float64 `json:"result"`
	Percentage float64 `json:"percentage"`
	Of         float64 `json:"of"`
}

// AgeResult.Months is derived from whole years, not counted on the calendar.
type AgeResult struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

type TriangleResult struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	C         float64 `json:"c"`
	Perimeter float64 `json:"perimeter"`
	Area      float64 `json:"area"`
}

type ConversionResult struct {
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

type RandomResult struct {
	Min     int   `json:"min"`
	Max     int   `json:"max"`
	Numbers []int `json:"numbers"`
}

type FractionResult struct {
	Op          string  `json:"op"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Value       float64 `json:"value"`
}

type ExpressionResult struct {
	Expression string  `json:"expression"`
	Value      float64 `json:"value"`
}

// ExpressionError is returned in place of a value when an expression cannot be parsed.
type ExpressionError struct {
	Expression string `json:"expression"`
	Message    string `json:"message"`
}

// ComingSoon is the placeholder result of catalog entries without a formula.
type ComingSoon struct {
	Message string `json:"message"`
}

func (LoanResult) Kind() ResultKind       { return ResultLoan }
func (BMIResult) Kind() ResultKind        { return ResultBMI }
func (PercentageResult) Kind() ResultKind { return ResultPercentage }
func (AgeResult) Kind() ResultKind        { return ResultAge }
func (TriangleResult) Kind() ResultKind   { return ResultTriangle }
func (ConversionResult) Kind() ResultKind { return ResultConversion }
func (RandomResult) Kind() ResultKind     { return ResultRandom }
func (FractionResult) Kind() ResultKind   { return ResultFraction }
func (ExpressionResult) Kind() ResultKind { return ResultExpression }
func (ExpressionError) Kind() ResultKind  { return ResultExpressionError }
func (ComingSoon) Kind() ResultKind       { return ResultComingSoon }

func (LoanResult) isResult()       {}
func (BMIResult) isResult()        {}
func (PercentageResult) isResult() {}
func (AgeResult) isResult()        {}
func (TriangleResult) isResult()   {}
func (ConversionResult) isResult() {}
func (RandomResult) isResult()     {}
func (FractionResult) isResult()   {}
func (ExpressionResult) isResult() {}
func (ExpressionError) isResult()  {}
func (ComingSoon) isResult()       {}

// Finite reports whether every numeric output of r is a finite number.
// NaN and ±Inf mark degenerate input and must not be displayed as values.
func Finite(r Result) bool {
	switch t := r.(type) {
	case LoanResult:
		return finite(t.MonthlyPayment, t.TotalPayment, t.TotalInterest)
	case BMIResult:
		return finite(t.BMI)
	case PercentageResult:
		return finite(t.Result)
	case TriangleResult:
		return finite(t.Perimeter, t.Area)
	case ConversionResult:
		return finite(t.Result)
	case FractionResult:
		return finite(t.Numerator, t.Denominator, t.Value)
	case ExpressionResult:
		return finite(t.Value)
	default:
		return true
	}
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Envelope is the serialized form of a Result, tagged with the calculator that produced it.
type Envelope struct {
	Calculator CalculatorID `json:"calculator"`
	Kind       ResultKind   `json:"kind"`
	Result     Result       `json:"result"`
}

// Wrap builds the envelope for r.
func Wrap(id CalculatorID, r Result) Envelope {
	env := Envelope{Calculator: id, Result: r}
	if r != nil {
		env.Kind = r.Kind()
	}
	return env
}

// Document returns the envelope as a generic JSON value (maps, slices,
// float64), the form JSONPath queries run against.
func (e Envelope) Document() (any, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// NewResult returns a zero value of the variant for kind.
func NewResult(kind ResultKind) (Result, bool) {
	switch kind {
	case ResultLoan:
		return &LoanResult{}, true
	case ResultBMI:
		return &BMIResult{}, true
	case ResultPercentage:
		return &PercentageResult{}, true
	case ResultAge:
		return &AgeResult{}, true
	case ResultTriangle:
		return &TriangleResult{}, true
	case ResultConversion:
		return &ConversionResult{}, true
	case ResultRandom:
		return &RandomResult{}, true
	case ResultFraction:
		return &FractionResult{}, true
	case ResultExpression:
		return &ExpressionResult{}, true
	case ResultExpressionError:
		return &ExpressionError{}, true
	case ResultComingSoon:
		return &ComingSoon{}, true
	default:
		return nil, false
	}
}

// UnmarshalJSON decodes the result according to the envelope's kind.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Calculator CalculatorID    `json:"calculator"`
		Kind       ResultKind      `json:"kind"`
		Result     json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Calculator = raw.Calculator
	e.Kind = raw.Kind
	e.Result = nil
	if len(raw.Result) == 0 || string(raw.Result) == "null" {
		return nil
	}

	ptr, ok := NewResult(raw.Kind)
	if !ok {
		return fmt.Errorf("unknown result kind %q", raw.Kind)
	}
	if err := json.Unmarshal(raw.Result, ptr); err != nil {
		return err
	}
	e.Result = deref(ptr)
	return nil
}

func deref(r Result) Result {
	switch t := r.(type) {
	case *LoanResult:
		return *t
	case *BMIResult:
		return *t
	case *PercentageResult:
		return *t
	case *AgeResult:
		return *t
	case *TriangleResult:
		return *t
	case *ConversionResult:
		return *t
	case *RandomResult:
		return *t
	case *FractionResult:
		return *t
	case *ExpressionResult:
		return *t
	case *ExpressionError:
		return *t
	case *ComingSoon:
		return *t
	default:
		return r
	}
}
