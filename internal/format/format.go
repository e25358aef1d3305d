// Package format renders numbers and results for terminal output.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/calckit/internal/domain"
)

// nonFinite renders NaN and ±Inf literally; ok is false for finite values.
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// Money formats v as dollars with two decimals, e.g. "$1264.14" or "-$5.00".
func Money(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Fixed formats v with exactly places decimals, rounding half away from zero.
func Fixed(v float64, places int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

// Number formats v with the fewest digits that round-trip, never in
// exponent form.
func Number(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).String()
}

// Line is one labelled value of a rendered result.
type Line struct {
	Label string
	Value string
}

// Lines lays out r as labelled values. precision applies to plain measures;
// money always uses two decimals.
func Lines(r domain.Result, precision int) []Line {
	switch t := r.(type) {
	case domain.LoanResult:
		return []Line{
			{"Monthly Payment", Money(t.MonthlyPayment)},
			{"Total Payment", Money(t.TotalPayment)},
			{"Total Interest", Money(t.TotalInterest)},
		}
	case domain.BMIResult:
		return []Line{
			{"BMI", Number(t.BMI)},
			{"Category", t.Category},
		}
	case domain.PercentageResult:
		return []Line{
			{"Result", Fixed(t.Result, precision)},
			{"Of", fmt.Sprintf("%s%% of %s", Number(t.Percentage), Number(t.Of))},
		}
	case domain.AgeResult:
		return []Line{
			{"Age in Years", strconv.Itoa(t.Years)},
			{"Age in Months", strconv.Itoa(t.Months)},
			{"Age in Days", strconv.Itoa(t.Days)},
		}
	case domain.TriangleResult:
		return []Line{
			{"Perimeter", Fixed(t.Perimeter, precision)},
			{"Area", Fixed(t.Area, precision)},
		}
	case domain.ConversionResult:
		return []Line{
			{"Result", fmt.Sprintf("%s %s = %s %s", Number(t.Value), t.From, Fixed(t.Result, precision), t.To)},
		}
	case domain.RandomResult:
		nums := make([]string, len(t.Numbers))
		for i, n := range t.Numbers {
			nums[i] = strconv.Itoa(n)
		}
		return []Line{
			{"Numbers", strings.Join(nums, ", ")},
			{"Range", fmt.Sprintf("%d to %d", t.Min, t.Max)},
		}
	case domain.FractionResult:
		return []Line{
			{"Result", Number(t.Numerator) + "/" + Number(t.Denominator)},
			{"Decimal", Fixed(t.Value, precision)},
		}
	case domain.ExpressionResult:
		return []Line{
			{"Expression", t.Expression},
			{"Result", Number(t.Value)},
		}
	case domain.ExpressionError:
		return []Line{{"Error", t.Message}}
	case domain.ComingSoon:
		return []Line{{"", t.Message}}
	default:
		return nil
	}
}

// Text renders Lines with the labels aligned, one per line.
func Text(r domain.Result, precision int) string {
	lines := Lines(r, precision)

	width := 0
	for _, l := range lines {
		if len(l.Label) > width {
			width = len(l.Label)
		}
	}

	var b strings.Builder
	for _, l := range lines {
		if l.Label == "" {
			b.WriteString(l.Value + "\n")
			continue
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width+1, l.Label+":", l.Value)
	}
	return b.String()
}
