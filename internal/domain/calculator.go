package domain

// CalculatorID is the routing key of a calculator (e.g. "mortgage", "bmi").
// It is unique across all categories.
type CalculatorID string

const (
	CalcMortgage   CalculatorID = "mortgage"
	CalcLoan       CalculatorID = "loan"
	CalcAutoLoan   CalculatorID = "auto-loan"
	CalcBMI        CalculatorID = "bmi"
	CalcPercentage CalculatorID = "percentage"
	CalcAge        CalculatorID = "age"
	CalcScientific CalculatorID = "scientific"
	CalcFraction   CalculatorID = "fraction"
	CalcTriangle   CalculatorID = "triangle"
	CalcRandom     CalculatorID = "random"
	CalcConversion CalculatorID = "conversion"
)

// Descriptor is the display metadata of one calculator in the catalog.
type Descriptor struct {
	ID          CalculatorID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Icon        string       `json:"icon"`
	Featured    bool         `json:"featured,omitempty"`
}

// Category groups descriptors for listing pages.
type Category struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Calculators []Descriptor `json:"calculators"`
}

// FieldType tells a front end which kind of input control to render.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldText   FieldType = "text"
	FieldChoice FieldType = "choice"
)

// Field describes one input of a calculator form.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Type        FieldType `json:"type"`
	Choices     []string  `json:"choices,omitempty"`
}
