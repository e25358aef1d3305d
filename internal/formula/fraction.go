package formula

import (
	"fmt"
	"math"
	"strings"
)

// FractionOperator is one of the four fraction operations.
type FractionOperator string

const (
	FractionAdd      FractionOperator = "add"
	FractionSubtract FractionOperator = "subtract"
	FractionMultiply FractionOperator = "multiply"
	FractionDivide   FractionOperator = "divide"
)

// ParseFractionOperator accepts the operation name or its symbol.
func ParseFractionOperator(s string) (FractionOperator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return FractionAdd, nil
	case "subtract", "-", "−":
		return FractionSubtract, nil
	case "multiply", "*", "×", "x":
		return FractionMultiply, nil
	case "divide", "/", "÷":
		return FractionDivide, nil
	default:
		return "", fmt.Errorf("unknown fraction operator %q", s)
	}
}

type Fraction struct {
	Numerator   float64
	Denominator float64
	Value       float64
}

// FractionOp applies op to n1/d1 and n2/d2 by cross-multiplication.
// Zero denominators are not guarded and produce NaN or ±Inf.
func FractionOp(n1, d1, n2, d2 float64, op FractionOperator) Fraction {
	var n, d float64
	switch op {
	case FractionAdd:
		n, d = n1*d2+n2*d1, d1*d2
	case FractionSubtract:
		n, d = n1*d2-n2*d1, d1*d2
	case FractionMultiply:
		n, d = n1*n2, d1*d2
	case FractionDivide:
		n, d = n1*d2, d1*n2
	default:
		return Fraction{Numerator: math.NaN(), Denominator: math.NaN(), Value: math.NaN()}
	}
	return Fraction{Numerator: n, Denominator: d, Value: n / d}
}

// Simplify reduces an integral fraction to lowest terms with a positive
// denominator. Non-integral or zero-denominator fractions are returned as is.
func Simplify(f Fraction) Fraction {
	if f.Denominator == 0 || !isInt(f.Numerator) || !isInt(f.Denominator) {
		return f
	}
	g := gcd(math.Abs(f.Numerator), math.Abs(f.Denominator))
	if g == 0 {
		return f
	}
	n, d := f.Numerator/g, f.Denominator/g
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction{Numerator: n, Denominator: d, Value: f.Value}
}

func gcd(a, b float64) float64 {
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}

func isInt(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}
