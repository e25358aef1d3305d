package domain

import "strings"

// InputSet holds the raw values typed into a calculator form, keyed by field name.
// It lives for one calculator session and is discarded on navigation.
type InputSet map[string]string

// Get returns the trimmed value for field and whether it is non-blank.
func (in InputSet) Get(field string) (string, bool) {
	if in == nil {
		return "", false
	}
	v := strings.TrimSpace(in[field])
	return v, v != ""
}

// Set sets a field value, initializing the set if needed.
func (in InputSet) Set(field, value string) InputSet {
	if in == nil {
		in = InputSet{}
	}
	in[field] = value
	return in
}

// Clone returns a copy that can be mutated independently.
func (in InputSet) Clone() InputSet {
	out := make(InputSet, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
