package ports

import "github.com/aalvaropc/calckit/internal/domain"

// Dispatcher runs the calculator registered for an identifier.
type Dispatcher interface {
	Dispatch(id domain.CalculatorID, inputs domain.InputSet) (domain.Result, error)
}

// CalculatorCatalog resolves identifiers to descriptors.
type CalculatorCatalog interface {
	Lookup(id domain.CalculatorID) (domain.Descriptor, error)
}

// MetricsRecorder counts calculation outcomes. Outcome is "ok" or an
// ErrorKind.
type MetricsRecorder interface {
	ObserveCalculation(id domain.CalculatorID, outcome string)
}
