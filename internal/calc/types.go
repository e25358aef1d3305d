package calc

import "github.com/aalvaropc/calckit/internal/domain"

// Calculator computes results for one or more catalog identifiers.
type Calculator interface {
	// IDs returns the identifiers this calculator serves.
	IDs() []domain.CalculatorID
	// Fields returns the input fields read by Calculate.
	Fields() []domain.Field
	// Calculate parses inputs and runs the formula for id.
	Calculate(id domain.CalculatorID, inputs domain.InputSet) (domain.Result, error)
}

// ComingSoonMessage is the placeholder text for catalogued calculators
// without a formula.
const ComingSoonMessage = "This calculator is coming soon!"

// InvalidExpressionMessage is the message of an expression error record.
const InvalidExpressionMessage = "Invalid expression"
