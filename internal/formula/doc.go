// Package formula holds the pure calculator formulas.
//
// Every function is stateless and total where possible: numerically degenerate
// input (zero denominators, impossible triangles) yields NaN or ±Inf instead of
// an error, and callers decide how to surface it.
package formula
