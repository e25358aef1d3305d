package domain

import "time"

// CalcError is the serializable form of a failed calculation.
type CalcError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewCalcError classifies err. It returns nil for a nil error.
func NewCalcError(err error) *CalcError {
	if err == nil {
		return nil
	}
	return &CalcError{Kind: KindOf(err), Message: err.Error()}
}

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ExtractResult is the output of a single extract rule.
type ExtractResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EntryResult is the outcome of one worksheet entry.
type EntryResult struct {
	Name       string       `json:"name"`
	Calculator CalculatorID `json:"calculator"`
	Inputs     InputSet     `json:"inputs"`

	Envelope *Envelope  `json:"envelope,omitempty"`
	Error    *CalcError `json:"error,omitempty"`

	Assertions []AssertionResult `json:"assertions"`
	Extracts   []ExtractResult   `json:"extracts"`
	Extracted  Vars              `json:"extracted"`
}

// Failed reports whether the entry errored unexpectedly or any check failed.
func (r EntryResult) Failed() bool {
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	for _, e := range r.Extracts {
		if !e.Success {
			return true
		}
	}
	return r.Error != nil && !r.errorExpected()
}

func (r EntryResult) errorExpected() bool {
	for _, a := range r.Assertions {
		if a.Name == "error" && a.Passed {
			return true
		}
	}
	return false
}

// RunResult is the outcome of running a whole worksheet. It is also the
// artifact persisted under the runs directory.
type RunResult struct {
	WorksheetName string    `json:"worksheet_name"`
	WorksheetPath string    `json:"worksheet_path"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`

	Results []EntryResult `json:"results"`
}

// Failures counts failed entries.
func (r RunResult) Failures() int {
	n := 0
	for _, e := range r.Results {
		if e.Failed() {
			n++
		}
	}
	return n
}

// RunArtifact is the persisted form of a run.
type RunArtifact = RunResult
