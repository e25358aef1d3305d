package formula

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Unit is a canonical unit name understood by Convert.
type Unit string

const (
	Meters     Unit = "meters"
	Feet       Unit = "feet"
	Kilometers Unit = "kilometers"
	Miles      Unit = "miles"
	Kilograms  Unit = "kilograms"
	Pounds     Unit = "pounds"
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

const (
	metersPerFoot     = 0.3048
	kilometersPerMile = 1.609344
	kilogramsPerPound = 0.45359237
)

type pair struct{ from, to Unit }

var conversions = map[pair]func(float64) float64{
	{Meters, Feet}:        func(v float64) float64 { return v / metersPerFoot },
	{Feet, Meters}:        func(v float64) float64 { return v * metersPerFoot },
	{Kilometers, Miles}:   func(v float64) float64 { return v / kilometersPerMile },
	{Miles, Kilometers}:   func(v float64) float64 { return v * kilometersPerMile },
	{Kilograms, Pounds}:   func(v float64) float64 { return v / kilogramsPerPound },
	{Pounds, Kilograms}:   func(v float64) float64 { return v * kilogramsPerPound },
	{Celsius, Fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
	{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
}

var aliases = map[string]Unit{
	"m": Meters, "meter": Meters, "meters": Meters, "metre": Meters, "metres": Meters,
	"ft": Feet, "foot": Feet, "feet": Feet,
	"km": Kilometers, "kilometer": Kilometers, "kilometers": Kilometers,
	"mi": Miles, "mile": Miles, "miles": Miles,
	"kg": Kilograms, "kilogram": Kilograms, "kilograms": Kilograms,
	"lb": Pounds, "lbs": Pounds, "pound": Pounds, "pounds": Pounds,
	"c": Celsius, "celsius": Celsius,
	"f": Fahrenheit, "fahrenheit": Fahrenheit,
}

// ParseUnit maps a unit name or abbreviation to its canonical Unit.
func ParseUnit(s string) (Unit, bool) {
	u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// Units lists the canonical unit names, sorted.
func Units() []string {
	seen := map[Unit]bool{}
	for _, u := range aliases {
		seen[u] = true
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, string(u))
	}
	sort.Strings(out)
	return out
}

// Convert converts value between two units of the same dimension.
// Converting a unit to itself returns value; any pair without a rule fails
// with domain.ErrUnsupportedConversion.
func Convert(value float64, from, to string) (float64, error) {
	f, okFrom := ParseUnit(from)
	t, okTo := ParseUnit(to)
	if !okFrom || !okTo {
		return 0, fmt.Errorf("%w: %q to %q", domain.ErrUnsupportedConversion, from, to)
	}
	if f == t {
		return value, nil
	}
	fn, ok := conversions[pair{f, t}]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", domain.ErrUnsupportedConversion, f, t)
	}
	return fn(value), nil
}
