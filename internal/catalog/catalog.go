// Package catalog is the static registry of calculators and the input form
// each one asks for.
package catalog

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Categories returns every category in display order. The result is a copy.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	for i, c := range categories {
		out[i] = cloneCategory(c)
	}
	return out
}

// All returns every descriptor across categories, in display order.
func All() []domain.Descriptor {
	var out []domain.Descriptor
	for _, c := range categories {
		out = append(out, c.Calculators...)
	}
	return out
}

func Featured() []domain.Descriptor {
	var out []domain.Descriptor
	for _, d := range All() {
		if d.Featured {
			out = append(out, d)
		}
	}
	return out
}

// Category returns the category with the given identifier.
func Category(id string) (domain.Category, error) {
	for _, c := range categories {
		if c.ID == id {
			return cloneCategory(c), nil
		}
	}
	return domain.Category{}, &domain.OpError{
		Op:   "catalog.category",
		Kind: domain.KindNotFound,
		Path: id,
		Err:  domain.ErrNotFound,
	}
}

// Lookup finds a calculator by exact identifier. The first match wins.
func Lookup(id domain.CalculatorID) (domain.Descriptor, error) {
	for _, c := range categories {
		for _, d := range c.Calculators {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return domain.Descriptor{}, &domain.OpError{
		Op:   "catalog.lookup",
		Kind: domain.KindNotFound,
		Path: string(id),
		Err:  fmt.Errorf("%w: calculator %q", domain.ErrNotFound, id),
	}
}

// Search keeps the calculators whose name or description contains query,
// ignoring case. Categories left empty are dropped; a blank query matches all.
func Search(query string) []domain.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Categories()
	}

	var out []domain.Category
	for _, c := range categories {
		var hits []domain.Descriptor
		for _, d := range c.Calculators {
			if Matches(d, q) {
				hits = append(hits, d)
			}
		}
		if len(hits) == 0 {
			continue
		}
		cat := c
		cat.Calculators = hits
		out = append(out, cat)
	}
	return out
}

// Matches reports whether query occurs in the descriptor's name or description.
func Matches(d domain.Descriptor, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}

// Form returns the input fields for id. Placeholder calculators have none.
func Form(id domain.CalculatorID) []domain.Field {
	fields := forms[id]
	out := make([]domain.Field, len(fields))
	copy(out, fields)
	return out
}

// Validate checks the registry invariants: identifiers are unique and every
// descriptor sits in the category it names.
func Validate() error {
	seen := map[domain.CalculatorID]string{}
	for _, c := range categories {
		for _, d := range c.Calculators {
			if prev, dup := seen[d.ID]; dup {
				return fmt.Errorf("%w: duplicate calculator %q in %s and %s", domain.ErrInvalidConfig, d.ID, prev, c.ID)
			}
			seen[d.ID] = c.ID
			if d.Category != c.ID {
				return fmt.Errorf("%w: calculator %q lists category %q but sits in %q", domain.ErrInvalidConfig, d.ID, d.Category, c.ID)
			}
		}
	}
	return nil
}

func cloneCategory(c domain.Category) domain.Category {
	c.Calculators = append([]domain.Descriptor(nil), c.Calculators...)
	return c
}

// Registry exposes the package-level catalog as a value for callers that
// take it as a dependency.
type Registry struct{}

func (Registry) Lookup(id domain.CalculatorID) (domain.Descriptor, error) { return Lookup(id) }
