package formula

import (
	"math"
	"time"
)

const (
	msPerDay      = 86400000
	daysPerYear   = 365.25
	monthsPerYear = 12
)

// Age is a person's age broken into whole units.
type Age struct {
	Years  int
	Months int
	Days   int
}

// AgeBreakdown computes the age at today of someone born at birth.
// Months is whole years times twelve, not a calendar month count.
func AgeBreakdown(birth, today time.Time) Age {
	ms := today.UnixMilli() - birth.UnixMilli()
	days := math.Floor(float64(ms) / msPerDay)
	years := math.Floor(days / daysPerYear)
	return Age{
		Years:  int(years),
		Months: int(math.Floor(years * monthsPerYear)),
		Days:   int(days),
	}
}
