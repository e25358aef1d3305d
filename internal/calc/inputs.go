package calc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aalvaropc/calckit/internal/domain"
)

// fieldReader parses fields out of an InputSet and keeps the first error.
type fieldReader struct {
	id  domain.CalculatorID
	in  domain.InputSet
	err error
}

func newReader(id domain.CalculatorID, in domain.InputSet) *fieldReader {
	return &fieldReader{id: id, in: in}
}

func (r *fieldReader) raw(field string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.in.Get(field)
	if !ok {
		r.err = &domain.OpError{
			Op:   "calc.input",
			Kind: domain.KindIncomplete,
			Path: string(r.id),
			Err:  fmt.Errorf("%w: %s is required", domain.ErrIncompleteInput, field),
		}
	}
	return v, ok
}

func (r *fieldReader) fail(field, msg string) {
	r.err = &domain.OpError{
		Op:   "calc.input",
		Kind: domain.KindInvalidInput,
		Path: string(r.id),
		Err:  fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, field, msg),
	}
}

func (r *fieldReader) number(field string) float64 {
	v, ok := r.raw(field)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(field, fmt.Sprintf("is not a number: %q", v))
		return 0
	}
	return f
}

func (r *fieldReader) integer(field string) int {
	v, ok := r.raw(field)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(field, fmt.Sprintf("is not a whole number: %q", v))
		return 0
	}
	return n
}

// optionalInteger returns def when the field is blank.
func (r *fieldReader) optionalInteger(field string, def int) int {
	if _, ok := r.in.Get(field); !ok {
		return def
	}
	return r.integer(field)
}

func (r *fieldReader) text(field string) string {
	v, _ := r.raw(field)
	return v
}

func (r *fieldReader) date(field string) time.Time {
	v, ok := r.raw(field)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		r.fail(field, fmt.Sprintf("is not a date (YYYY-MM-DD): %q", v))
		return time.Time{}
	}
	return t
}
