package formula

import "math"

type Triangle struct {
	Perimeter float64
	Area      float64
}

// TriangleMetrics returns the perimeter and Heron's-formula area of a triangle
// with sides a, b and c. The area is NaN when the sides violate the triangle
// inequality.
func TriangleMetrics(a, b, c float64) Triangle {
	p := a + b + c
	s := p / 2
	return Triangle{
		Perimeter: p,
		Area:      math.Sqrt(s * (s - a) * (s - b) * (s - c)),
	}
}
