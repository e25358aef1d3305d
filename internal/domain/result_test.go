package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFinite(t *testing.T) {
	cases := []struct {
		name string
		r    Result
		want bool
	}{
		{"loan ok", LoanResult{MonthlyPayment: 1, TotalPayment: 2, TotalInterest: 1}, true},
		{"loan inf", LoanResult{MonthlyPayment: math.Inf(1)}, false},
		{"triangle nan", TriangleResult{Perimeter: 7, Area: math.NaN()}, false},
		{"fraction inf", FractionResult{Value: math.Inf(-1)}, false},
		{"age always", AgeResult{Years: 1}, true},
		{"coming soon", ComingSoon{Message: "x"}, true},
		{"expression error", ExpressionError{Message: "Invalid expression"}, true},
	}
	for _, c := range cases {
		if got := Finite(c.r); got != c.want {
			t.Errorf("%s: Finite=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestWrapCarriesKind(t *testing.T) {
	env := Wrap(CalcBMI, BMIResult{BMI: 21.7, Category: "Normal Weight"})
	if env.Kind != ResultBMI {
		t.Fatalf("expected kind bmi, got %s", env.Kind)
	}

	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	res, ok := doc["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result object, got %s", b)
	}
	if res["category"] != "Normal Weight" {
		t.Fatalf("expected category in payload, got %s", b)
	}
}

func TestEnvelopeDocument(t *testing.T) {
	doc, err := Wrap(CalcPercentage, PercentageResult{Result: 50, Percentage: 25, Of: 200}).Document()
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	m := doc.(map[string]any)
	if m["kind"] != "percentage" {
		t.Fatalf("expected kind percentage, got %v", m["kind"])
	}
	if m["result"].(map[string]any)["result"] != 50.0 {
		t.Fatalf("expected result 50, got %v", m["result"])
	}

	if _, err := Wrap(CalcTriangle, TriangleResult{Area: math.NaN()}).Document(); err == nil {
		t.Fatalf("expected NaN to be unencodable")
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	in := Wrap(CalcRandom, RandomResult{Min: 1, Max: 6, Numbers: []int{3, 5}})
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Envelope
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, ok := out.Result.(RandomResult)
	if !ok {
		t.Fatalf("expected RandomResult value, got %T", out.Result)
	}
	if out.Calculator != CalcRandom || got.Max != 6 || len(got.Numbers) != 2 {
		t.Fatalf("unexpected round trip: %+v", out)
	}

	if err := json.Unmarshal([]byte(`{"kind":"weather","result":{}}`), &out); err == nil {
		t.Fatalf("expected unknown kind to fail")
	}
}
