package yamlsheet

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/calckit/internal/domain"
)

var assertableKinds = map[domain.ErrorKind]bool{
	domain.KindNotFound:     true,
	domain.KindInvalidInput: true,
	domain.KindIncomplete:   true,
	domain.KindDegenerate:   true,
	domain.KindUnsupported:  true,
	domain.KindMissingVar:   true,
}

func mapWorksheet(path string, yw yamlWorksheet) (domain.Worksheet, error) {
	if strings.TrimSpace(yw.Name) == "" {
		return domain.Worksheet{}, invalidField(path, "name", "worksheet name is required")
	}

	vars, err := scalars(yw.Vars)
	if err != nil {
		return domain.Worksheet{}, invalidField(path, "vars", err.Error())
	}

	ws := domain.Worksheet{
		Name:    yw.Name,
		Vars:    domain.Vars(vars),
		Entries: make([]domain.Entry, 0, len(yw.Entries)),
	}

	for i, e := range yw.Entries {
		prefix := fmt.Sprintf("entries[%d]", i)

		if strings.TrimSpace(e.Name) == "" {
			return domain.Worksheet{}, invalidField(path, prefix+".name", "entry name is required")
		}
		if strings.TrimSpace(e.Calculator) == "" {
			return domain.Worksheet{}, invalidField(path, prefix+".calculator", "calculator is required")
		}

		inputs, err := scalars(e.Inputs)
		if err != nil {
			return domain.Worksheet{}, invalidField(path, prefix+".inputs", err.Error())
		}

		entry := domain.Entry{
			Name:       e.Name,
			Calculator: domain.CalculatorID(strings.TrimSpace(e.Calculator)),
			Inputs:     domain.InputSet(inputs),
			Assert:     domain.AssertionsSpec{JSONPath: mapJSONPath(e.Assert.JSONPath)},
			Extract:    domain.ExtractSpec(e.Extract),
		}

		if k := strings.TrimSpace(e.Assert.Error); k != "" {
			kind := domain.ErrorKind(k)
			if !assertableKinds[kind] {
				return domain.Worksheet{}, invalidField(path, prefix+".assert.error", fmt.Sprintf("unknown error kind %q", k))
			}
			entry.Assert.Error = &kind
		}
		if entry.Extract == nil {
			entry.Extract = domain.ExtractSpec{}
		}

		ws.Entries = append(ws.Entries, entry)
	}

	return ws, nil
}

// scalars flattens a mapping of YAML scalars to their literal text.
func scalars(in map[string]yaml.Node) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, n := range in {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s: expected a scalar value (line %d)", k, n.Line)
		}
		if n.Tag == "!!null" {
			out[k] = ""
			continue
		}
		out[k] = n.Value
	}
	return out, nil
}

func mapJSONPath(in map[string]yamlJSONPathAssertion) map[string]domain.JSONPathAssertion {
	out := make(map[string]domain.JSONPathAssertion, len(in))
	for k, v := range in {
		out[k] = domain.JSONPathAssertion{
			Exists:    v.Exists,
			Eq:        v.Eq,
			Contains:  v.Contains,
			Matches:   v.Matches,
			Gt:        v.Gt,
			Lt:        v.Lt,
			Approx:    v.Approx,
			Tolerance: v.Tolerance,
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlsheet.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
