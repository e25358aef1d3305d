package formula

// PercentageOf returns percentage percent of value.
func PercentageOf(value, percentage float64) float64 {
	return value * percentage / 100
}
