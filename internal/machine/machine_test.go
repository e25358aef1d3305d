package machine

import (
	"errors"
	"math"
	"testing"
)

func press(t *testing.T, m *Machine, keys ...string) {
	t.Helper()
	if err := m.PressAll(keys...); err != nil {
		t.Fatalf("press %v: %v", keys, err)
	}
}

func TestDigitsReplaceLeadingZero(t *testing.T) {
	m := New()
	press(t, m, "0", "0", "7", "2")
	if m.Display() != "72" {
		t.Fatalf("expected 72, got %q", m.Display())
	}
}

func TestDecimalOncePerOperand(t *testing.T) {
	m := New()
	press(t, m, "1", ".", "5", ".", "2")
	if m.Display() != "1.52" {
		t.Fatalf("expected 1.52, got %q", m.Display())
	}

	press(t, m, "+", ".")
	if m.Display() != "0." {
		t.Fatalf("decimal after operator should start 0., got %q", m.Display())
	}
}

func TestChainEvaluatesLeftToRight(t *testing.T) {
	m := New()
	press(t, m, "2", "+", "3", "+")
	if m.Display() != "5" {
		t.Fatalf("expected intermediate 5, got %q", m.Display())
	}
	press(t, m, "4", "=")
	if m.Display() != "9" {
		t.Fatalf("expected 9, got %q", m.Display())
	}
	if m.Pending() != "" || m.Previous() != "" {
		t.Fatalf("equals should clear pending state")
	}

	m.Clear()
	press(t, m, "2", "+", "3", "×", "4", "=")
	if m.Display() != "20" {
		t.Fatalf("expected no precedence (20), got %q", m.Display())
	}
}

func TestOperatorSwapWhileWaiting(t *testing.T) {
	m := New()
	press(t, m, "8", "+", "-", "3", "=")
	if m.Display() != "5" {
		t.Fatalf("expected 5, got %q", m.Display())
	}
}

func TestEqualsWithoutPendingIsNoop(t *testing.T) {
	m := New()
	press(t, m, "4", "2", "=")
	if m.Display() != "42" {
		t.Fatalf("expected 42, got %q", m.Display())
	}
}

func TestResultContinuesIntoNextOperation(t *testing.T) {
	m := New()
	press(t, m, "6", "÷", "4", "=")
	if m.Display() != "1.5" {
		t.Fatalf("expected 1.5, got %q", m.Display())
	}
	press(t, m, "×", "2", "=")
	if m.Display() != "3" {
		t.Fatalf("expected 3, got %q", m.Display())
	}
	press(t, m, "7")
	if m.Display() != "7" {
		t.Fatalf("digit after equals starts a new operand, got %q", m.Display())
	}
}

func TestDivideByZero(t *testing.T) {
	m := New()
	press(t, m, "1", "÷", "0", "=")
	if m.Display() != "Infinity" {
		t.Fatalf("expected Infinity, got %q", m.Display())
	}
	press(t, m, "0", "÷", "0", "=")
	if m.Display() != "NaN" {
		t.Fatalf("expected NaN, got %q", m.Display())
	}
}

func TestClearEntryKeepsPendingOperation(t *testing.T) {
	m := New()
	press(t, m, "9", "-", "5", "CE", "4", "=")
	if m.Display() != "5" {
		t.Fatalf("expected 5, got %q", m.Display())
	}
}

func TestBackspace(t *testing.T) {
	m := New()
	press(t, m, "1", "2", "3", "⌫")
	if m.Display() != "12" {
		t.Fatalf("expected 12, got %q", m.Display())
	}
	press(t, m, "back", "back")
	if m.Display() != "0" {
		t.Fatalf("expected 0, got %q", m.Display())
	}
}

func TestMemory(t *testing.T) {
	m := New()
	press(t, m, "5", "M+", "CE", "3", "M+", "MR")
	if m.Display() != "8" {
		t.Fatalf("expected 8, got %q", m.Display())
	}

	press(t, m, "C")
	if m.Memory() != 8 {
		t.Fatalf("clear must not touch memory")
	}

	press(t, m, "2", "M-", "MR")
	if m.Display() != "6" {
		t.Fatalf("expected 6, got %q", m.Display())
	}

	press(t, m, "MC", "MR")
	if m.Display() != "0" {
		t.Fatalf("expected 0, got %q", m.Display())
	}
}

func TestScientificFunctions(t *testing.T) {
	cases := []struct {
		keys []string
		want string
	}{
		{[]string{"9", "sqrt"}, "3"},
		{[]string{"1", "2", "square"}, "144"},
		{[]string{"4", "inverse"}, "0.25"},
		{[]string{"5", "factorial"}, "120"},
		{[]string{"5", "0", "%"}, "0.5"},
		{[]string{"7", "±"}, "-7"},
		{[]string{"9", "0", "sin"}, "1"},
		{[]string{"0", "cos"}, "1"},
		{[]string{"pi"}, "3.141592653589793"},
	}
	for _, c := range cases {
		m := New()
		press(t, m, c.keys...)
		if m.Display() != c.want {
			t.Errorf("%v: got %q, want %q", c.keys, m.Display(), c.want)
		}
	}
}

func TestFunctionResultStartsNewOperand(t *testing.T) {
	m := New()
	press(t, m, "9", "sqrt", "4")
	if m.Display() != "4" {
		t.Fatalf("expected new operand, got %q", m.Display())
	}
}

func TestUnknownKey(t *testing.T) {
	m := New()
	if err := m.Press("sinh"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if err := m.Apply(Func("cbrt")); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{9, "9"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{2.5e300, "2.5e+300"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, c := range cases {
		if got := formatNumber(c.in); got != c.want {
			t.Errorf("formatNumber(%v)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if v := parseNumber("0."); v != 0 {
		t.Fatalf("expected 0, got %v", v)
	}
	if v := parseNumber("Infinity"); !math.IsInf(v, 1) {
		t.Fatalf("expected +Inf, got %v", v)
	}
	if v := parseNumber("-"); !math.IsNaN(v) {
		t.Fatalf("expected NaN, got %v", v)
	}
	if v := parseNumber("12e"); v != 12 {
		t.Fatalf("expected numeric prefix 12, got %v", v)
	}
}
