package formula

import "math"

// Factorial returns n! for non-negative integers and NaN otherwise.
// Results beyond float64 range are +Inf.
func Factorial(n float64) float64 {
	if n < 0 || n != math.Trunc(n) || math.IsNaN(n) {
		return math.NaN()
	}
	if n > 170 {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}
