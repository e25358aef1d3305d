// Package calc dispatches a calculator identifier and its raw inputs to the
// formula that serves it.
//
// Each Calculator parses its own fields out of a domain.InputSet. Blank
// fields fail with domain.ErrIncompleteInput, which front ends treat as "not
// ready yet" rather than as an error. Identifiers that are catalogued but not
// registered resolve to a domain.ComingSoon result.
package calc
