package calc

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
)

type stubCalculator struct {
	ids    []domain.CalculatorID
	result domain.Result
	gotID  domain.CalculatorID
}

func (s *stubCalculator) IDs() []domain.CalculatorID { return s.ids }
func (s *stubCalculator) Fields() []domain.Field     { return nil }
func (s *stubCalculator) Calculate(id domain.CalculatorID, _ domain.InputSet) (domain.Result, error) {
	s.gotID = id
	return s.result, nil
}

func fixedClock() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

func newTestEngine() *Engine {
	return NewDefaultEngine(WithClock(fixedClock), WithRand(rand.New(rand.NewPCG(7, 11))))
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	e := NewEngine()
	e.Register(&stubCalculator{ids: []domain.CalculatorID{"a", "b"}})
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate identifier")
		}
	}()
	e.Register(&stubCalculator{ids: []domain.CalculatorID{"b"}})
}

func TestDispatchRoutesByID(t *testing.T) {
	stub := &stubCalculator{ids: []domain.CalculatorID{"x", "y"}, result: domain.PercentageResult{Result: 1}}
	e := NewEngine()
	e.Register(stub)

	if _, err := e.Dispatch("y", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.gotID != "y" {
		t.Fatalf("expected calculator to see id y, got %q", stub.gotID)
	}
}

func TestDispatchUnregisteredIsComingSoon(t *testing.T) {
	res, err := newTestEngine().Dispatch("salary", domain.InputSet{"anything": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs, ok := res.(domain.ComingSoon)
	if !ok || cs.Message != ComingSoonMessage {
		t.Fatalf("expected coming soon, got %#v", res)
	}
}

func TestDefaultEngineCoversImplementedCatalog(t *testing.T) {
	e := newTestEngine()
	implemented := []domain.CalculatorID{
		domain.CalcMortgage, domain.CalcLoan, domain.CalcAutoLoan, domain.CalcBMI,
		domain.CalcPercentage, domain.CalcAge, domain.CalcScientific, domain.CalcFraction,
		domain.CalcTriangle, domain.CalcRandom, domain.CalcConversion,
	}
	for _, id := range implemented {
		if !e.Has(id) {
			t.Errorf("expected %s to be registered", id)
		}
		if _, err := catalog.Lookup(id); err != nil {
			t.Errorf("registered %s is missing from the catalog", id)
		}
		if len(e.Fields(id)) == 0 {
			t.Errorf("%s has no fields", id)
		}
	}
	if len(e.IDs()) != len(implemented) {
		t.Fatalf("expected %d ids, got %v", len(implemented), e.IDs())
	}
}

func TestLoanCalculators(t *testing.T) {
	e := newTestEngine()
	for _, id := range []domain.CalculatorID{domain.CalcMortgage, domain.CalcLoan, domain.CalcAutoLoan} {
		res, err := e.Dispatch(id, domain.InputSet{"amount": "100000", "rate": "6", "years": "30"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		loan := res.(domain.LoanResult)
		if math.Abs(loan.MonthlyPayment-599.55) > 0.01 {
			t.Fatalf("%s: expected ~599.55, got %v", id, loan.MonthlyPayment)
		}
		if math.Abs(loan.TotalInterest-(loan.TotalPayment-100000)) > 1e-6 {
			t.Fatalf("%s: inconsistent totals %+v", id, loan)
		}
	}

	res, err := e.Dispatch(domain.CalcLoan, domain.InputSet{"amount": "1200", "rate": "0", "years": "1"})
	if err != nil {
		t.Fatalf("zero rate: %v", err)
	}
	if res.(domain.LoanResult).MonthlyPayment != 100 {
		t.Fatalf("zero rate should fall back to principal/n, got %+v", res)
	}
}

func TestBlankInputIsIncomplete(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		id domain.CalculatorID
		in domain.InputSet
	}{
		{domain.CalcMortgage, domain.InputSet{"amount": "100000", "rate": "6"}},
		{domain.CalcBMI, domain.InputSet{"height": "  ", "weight": "150"}},
		{domain.CalcAge, nil},
		{domain.CalcScientific, domain.InputSet{"expression": ""}},
		{domain.CalcConversion, domain.InputSet{"value": "1", "from": "m"}},
	}
	for _, c := range cases {
		_, err := e.Dispatch(c.id, c.in)
		if !errors.Is(err, domain.ErrIncompleteInput) || !domain.IsKind(err, domain.KindIncomplete) {
			t.Errorf("%s: expected incomplete, got %v", c.id, err)
		}
	}
}

func TestUnparsableNumberIsInvalid(t *testing.T) {
	_, err := newTestEngine().Dispatch(domain.CalcBMI, domain.InputSet{"height": "tall", "weight": "150"})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if !strings.Contains(err.Error(), "height") {
		t.Fatalf("expected field name in error, got %v", err)
	}
}

func TestBMI(t *testing.T) {
	res, err := newTestEngine().Dispatch(domain.CalcBMI, domain.InputSet{"height": "5.8", "weight": "150"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(domain.BMIResult); got.BMI != 21.8 || got.Category != "Normal Weight" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestPercentage(t *testing.T) {
	res, err := newTestEngine().Dispatch(domain.CalcPercentage, domain.InputSet{"percentage": "25", "value": "200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(domain.PercentageResult); got.Result != 50 || got.Of != 200 || got.Percentage != 25 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestAge(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcAge, domain.InputSet{"birthDate": "1990-03-09"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	age := res.(domain.AgeResult)
	if age.Years != 34 || age.Months != 408 || age.Days != 12419 {
		t.Fatalf("unexpected age %+v", age)
	}

	if _, err := e.Dispatch(domain.CalcAge, domain.InputSet{"birthDate": "2030-01-01"}); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("future birth date should be invalid, got %v", err)
	}
	if _, err := e.Dispatch(domain.CalcAge, domain.InputSet{"birthDate": "09/03/1990"}); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("bad date format should be invalid, got %v", err)
	}
}

func TestTriangle(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcTriangle, domain.InputSet{"a": "3", "b": "4", "c": "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(domain.TriangleResult); got.Perimeter != 12 || got.Area != 6 {
		t.Fatalf("unexpected result %+v", got)
	}

	res, err = e.Dispatch(domain.CalcTriangle, domain.InputSet{"a": "1", "b": "1", "c": "5"})
	if err != nil {
		t.Fatalf("degenerate triangles are not input errors: %v", err)
	}
	if domain.Finite(res) {
		t.Fatalf("expected a non-finite area, got %+v", res)
	}
}

func TestConversion(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcConversion, domain.InputSet{"value": "100", "from": "C", "to": "fahrenheit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(domain.ConversionResult)
	if got.Result != 212 || got.From != "celsius" || got.To != "fahrenheit" {
		t.Fatalf("unexpected result %+v", got)
	}

	_, err = e.Dispatch(domain.CalcConversion, domain.InputSet{"value": "1", "from": "meters", "to": "pounds"})
	if !errors.Is(err, domain.ErrUnsupportedConversion) || !domain.IsKind(err, domain.KindUnsupported) {
		t.Fatalf("expected unsupported conversion, got %v", err)
	}

	_, err = e.Dispatch(domain.CalcConversion, domain.InputSet{"value": "1", "from": "cubits", "to": "feet"})
	if !domain.IsKind(err, domain.KindUnsupported) || !strings.Contains(err.Error(), "cubits") {
		t.Fatalf("expected unsupported unit name, got %v", err)
	}
}

func TestRandom(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcRandom, domain.InputSet{"min": "1", "max": "6", "count": "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(domain.RandomResult)
	if len(got.Numbers) != 10 {
		t.Fatalf("expected 10 numbers, got %d", len(got.Numbers))
	}
	for _, n := range got.Numbers {
		if n < 1 || n > 6 {
			t.Fatalf("number %d out of range", n)
		}
	}

	res, err = e.Dispatch(domain.CalcRandom, domain.InputSet{"min": "1", "max": "6"})
	if err != nil || len(res.(domain.RandomResult).Numbers) != 1 {
		t.Fatalf("count should default to 1, got %v, %v", res, err)
	}

	extreme := []domain.InputSet{
		{"min": "0", "max": "9223372036854775807", "count": "5"},
		{"min": "-9223372036854775808", "max": "9223372036854775807", "count": "5"},
		{"min": "-9223372036854775808", "max": "-9223372036854775807"},
	}
	for _, in := range extreme {
		res, err := e.Dispatch(domain.CalcRandom, in)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", in, err)
		}
		got := res.(domain.RandomResult)
		for _, n := range got.Numbers {
			if n < got.Min || n > got.Max {
				t.Fatalf("%v: number %d out of range", in, n)
			}
		}
	}

	invalid := []domain.InputSet{
		{"min": "6", "max": "6"},
		{"min": "9", "max": "6"},
		{"min": "1", "max": "6", "count": "0"},
		{"min": "1", "max": "6", "count": "101"},
		{"min": "1.5", "max": "6"},
	}
	for _, in := range invalid {
		if _, err := e.Dispatch(domain.CalcRandom, in); !domain.IsKind(err, domain.KindInvalidInput) {
			t.Errorf("%v: expected invalid_input, got %v", in, err)
		}
	}
}

func TestFraction(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcFraction, domain.InputSet{"n1": "1", "d1": "2", "op": "+", "n2": "1", "d2": "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.(domain.FractionResult)
	if got.Op != "add" || got.Numerator != 5 || got.Denominator != 6 || math.Abs(got.Value-5.0/6) > 1e-12 {
		t.Fatalf("unexpected result %+v", got)
	}

	_, err = e.Dispatch(domain.CalcFraction, domain.InputSet{"n1": "1", "d1": "2", "op": "pow", "n2": "1", "d2": "3"})
	if !domain.IsKind(err, domain.KindInvalidInput) || !strings.Contains(err.Error(), "pow") {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestExpression(t *testing.T) {
	e := newTestEngine()
	res, err := e.Dispatch(domain.CalcScientific, domain.InputSet{"expression": "(2 + 3) × 4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.(domain.ExpressionResult); got.Value != 20 {
		t.Fatalf("unexpected result %+v", got)
	}

	res, err = e.Dispatch(domain.CalcScientific, domain.InputSet{"expression": "alert(1)"})
	if err != nil {
		t.Fatalf("malformed expressions are records, not errors: %v", err)
	}
	rec, ok := res.(domain.ExpressionError)
	if !ok || rec.Message != InvalidExpressionMessage || rec.Expression != "alert(1)" {
		t.Fatalf("expected expression error record, got %#v", res)
	}
}
