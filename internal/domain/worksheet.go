package domain

// JSONPathAssertion defines checks on a JSONPath expression evaluated against a result envelope.
type JSONPathAssertion struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64

	// Approx passes when |value-Approx| <= Tolerance.
	Approx    *float64
	Tolerance float64
}

// AssertionsSpec defines checks for one worksheet entry.
type AssertionsSpec struct {
	// Error expects the calculation to fail with the given kind (optional).
	Error *ErrorKind

	// JSONPath contains JSONPath assertions keyed by expression (optional).
	// Example key: "$.result.monthly_payment".
	JSONPath map[string]JSONPathAssertion
}

// ExtractSpec defines variable extraction from a result envelope.
// Map: variableName -> jsonpathExpression
type ExtractSpec map[string]string

// Entry is one calculation in a worksheet.
type Entry struct {
	Name       string
	Calculator CalculatorID
	Inputs     InputSet

	Assert  AssertionsSpec
	Extract ExtractSpec
}

// Worksheet groups calculations that run in order; values extracted by an
// entry are available to the inputs of the entries after it.
type Worksheet struct {
	Name string

	// Vars are default variables available to all entries.
	Vars Vars

	Entries []Entry
}

// WorksheetRef is a lightweight reference to a worksheet file on disk.
type WorksheetRef struct {
	Name string
	Path string
}
