package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testRuntime(t *testing.T, vars Vars) *RuntimeResolver {
	t.Helper()
	vr := NewVarResolver(
		WithNow(func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }),
		WithUUID(func() (string, error) { return "00000000-0000-0000-0000-000000000000", nil }),
	)
	rt, err := vr.NewRuntime(vars)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	return rt
}

func TestResolveString_NoPlaceholders(t *testing.T) {
	rt := testRuntime(t, Vars{})
	got, err := rt.ResolveString("100000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "100000" {
		t.Fatalf("expected %q, got %q", "100000", got)
	}
}

func TestResolveString_VarsAndBuiltins(t *testing.T) {
	rt := testRuntime(t, Vars{"payment": "599.55"})

	got, err := rt.ResolveString("{{ payment }}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "599.55" {
		t.Fatalf("expected 599.55, got %q", got)
	}

	got, err = rt.ResolveString("{{$today}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-09" {
		t.Fatalf("expected 2024-03-09, got %q", got)
	}

	got, err = rt.ResolveString("{{$timestamp}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1709985600" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestResolveString_MissingVar(t *testing.T) {
	rt := testRuntime(t, Vars{})
	_, err := rt.ResolveString("{{nope}}")
	if !IsKind(err, KindMissingVar) {
		t.Fatalf("expected KindMissingVar, got %v", err)
	}
}

func TestResolveString_Malformed(t *testing.T) {
	rt := testRuntime(t, Vars{})
	if _, err := rt.ResolveString("{{open"); !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config for unclosed placeholder, got %v", err)
	}
	if _, err := rt.ResolveString("{{  }}"); !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config for empty placeholder, got %v", err)
	}
}

func TestResolveEntry_DoesNotMutate(t *testing.T) {
	rt := testRuntime(t, Vars{"amt": "200"})
	e := Entry{Name: "pct", Calculator: CalcPercentage, Inputs: InputSet{"value": "{{amt}}", "percentage": "25"}}

	out, err := rt.ResolveEntry(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Inputs["value"] != "200" {
		t.Fatalf("expected resolved value, got %q", out.Inputs["value"])
	}
	if e.Inputs["value"] != "{{amt}}" {
		t.Fatalf("input entry mutated")
	}
}

func TestResolveInputs_FieldContext(t *testing.T) {
	rt := testRuntime(t, Vars{})
	_, err := rt.ResolveInputs(InputSet{"value": "{{missing}}"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsKind(err, KindMissingVar) {
		t.Fatalf("expected kind preserved, got %v", err)
	}
	if !strings.Contains(err.Error(), "inputs.value") {
		t.Fatalf("expected field path in error, got %v", err)
	}
}

func TestNewRuntime_UUIDFailure(t *testing.T) {
	boom := errors.New("no entropy")
	vr := NewVarResolver(WithUUID(func() (string, error) { return "", boom }))
	_, err := vr.NewRuntime(nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected uuid error in chain, got %v", err)
	}
}
