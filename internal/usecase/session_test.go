package usecase

import (
	"context"
	"testing"

	"github.com/aalvaropc/calckit/internal/domain"
)

func TestSessionKeepsPriorResultOnFailure(t *testing.T) {
	s := NewSession(newCalculate(), domain.CalcPercentage)
	ctx := context.Background()

	if _, err := s.Calculate(ctx); err == nil {
		t.Fatalf("expected incomplete input error")
	}
	if s.Result() != nil {
		t.Fatalf("expected no result yet")
	}

	s.Set("percentage", "10")
	s.Set("value", "50")
	if _, err := s.Calculate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := s.Result().(domain.PercentageResult)
	if first.Result != 5 {
		t.Fatalf("expected 5, got %v", first.Result)
	}

	s.Set("value", "abc")
	res, err := s.Calculate(ctx)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if res != first || s.Result() != first {
		t.Fatalf("failed calculation must keep the previous result")
	}

	s.Set("value", "200")
	if _, err := s.Calculate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Result().(domain.PercentageResult).Result != 20 {
		t.Fatalf("new calculation should replace the result")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(newCalculate(), domain.CalcBMI)
	s.Set("height", "5.8")
	s.Set("weight", "150")
	if _, err := s.Calculate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()
	if s.Result() != nil || len(s.Inputs()) != 0 {
		t.Fatalf("expected cleared session")
	}
	if s.ID() != domain.CalcBMI {
		t.Fatalf("reset must keep the calculator")
	}
}

func TestSessionInputsAreCopied(t *testing.T) {
	s := NewSession(newCalculate(), domain.CalcBMI)
	s.Set("height", "5.8")
	in := s.Inputs()
	in["height"] = "9"
	if v, _ := s.Inputs().Get("height"); v != "5.8" {
		t.Fatalf("expected inputs to be copied, got %q", v)
	}
}
