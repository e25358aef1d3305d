package formula

import "math"

const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal Weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// BMI computes the body mass index from height in feet and weight in pounds,
// rounded to one decimal, and its category.
func BMI(heightFeet, weightLbs float64) (float64, string) {
	inches := heightFeet * 12
	bmi := weightLbs / (inches * inches) * 703
	return math.Floor(bmi*10+0.5) / 10, BMICategory(bmi)
}

// BMICategory classifies a BMI value. Each band includes its lower bound.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
