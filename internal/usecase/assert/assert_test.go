package assert

import (
	"strings"
	"testing"

	"github.com/aalvaropc/calckit/internal/domain"
)

func strPtr(s string) *string                      { return &s }
func f64Ptr(f float64) *float64                    { return &f }
func kindPtr(k domain.ErrorKind) *domain.ErrorKind { return &k }

func loanEnvelope() *domain.Envelope {
	env := domain.Wrap(domain.CalcMortgage, domain.LoanResult{
		Principal:      100000,
		AnnualRate:     6,
		Years:          30,
		MonthlyPayment: 599.5505251527569,
		TotalPayment:   215838.18905499247,
		TotalInterest:  115838.18905499247,
	})
	return &env
}

func TestError(t *testing.T) {
	if r := Error(domain.KindIncomplete, &domain.CalcError{Kind: domain.KindIncomplete}); !r.Passed {
		t.Fatalf("expected pass, got %+v", r)
	}
	if r := Error(domain.KindIncomplete, &domain.CalcError{Kind: domain.KindInvalidInput, Message: "bad"}); r.Passed {
		t.Fatalf("expected kind mismatch to fail")
	}
	r := Error(domain.KindIncomplete, nil)
	if r.Passed || !strings.Contains(r.Message, "succeeded") {
		t.Fatalf("expected failure when there was no error, got %+v", r)
	}
}

func TestEvaluateJSONPath(t *testing.T) {
	spec := domain.AssertionsSpec{
		JSONPath: map[string]domain.JSONPathAssertion{
			"$.kind":                   {Eq: strPtr("loan")},
			"$.calculator":             {Exists: true, Matches: strPtr("^mort")},
			"$.result.monthly_payment": {Approx: f64Ptr(599.55), Tolerance: 0.01, Gt: f64Ptr(500), Lt: f64Ptr(600)},
			"$.result.principal":       {Contains: strPtr("100")},
		},
	}

	results := Evaluate(spec, loanEnvelope(), nil)
	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d: %+v", len(results), results)
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s failed: %s", r.Name, r.Message)
		}
	}
}

func TestEvaluateFailures(t *testing.T) {
	spec := domain.AssertionsSpec{
		JSONPath: map[string]domain.JSONPathAssertion{
			"$.result.monthly_payment": {Approx: f64Ptr(600)},
			"$.result.missing":         {Exists: true},
			"$.kind":                   {Matches: strPtr("(")},
		},
	}

	results := Evaluate(spec, loanEnvelope(), nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Passed {
			t.Errorf("%s should fail: %s", r.Name, r.Message)
		}
	}
}

func TestEvaluateWithoutEnvelope(t *testing.T) {
	spec := domain.AssertionsSpec{
		Error:    kindPtr(domain.KindDegenerate),
		JSONPath: map[string]domain.JSONPathAssertion{"$.kind": {Exists: true}},
	}

	results := Evaluate(spec, nil, &domain.CalcError{Kind: domain.KindDegenerate})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed || results[0].Name != "error" {
		t.Fatalf("expected error assertion first and passing, got %+v", results[0])
	}
	if results[1].Passed || !strings.Contains(results[1].Message, "no result") {
		t.Fatalf("expected jsonpath check to fail without a result, got %+v", results[1])
	}
}

func TestEvaluateEmptySpec(t *testing.T) {
	if got := Evaluate(domain.AssertionsSpec{}, loanEnvelope(), nil); len(got) != 0 {
		t.Fatalf("expected no results, got %+v", got)
	}
}
