// Package extract pulls worksheet variables out of a result envelope.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Apply evaluates rules (variable name to JSONPath) against env.
//
// Rules run in name order. A failing rule is reported and the rest still run.
// Without an envelope every rule fails and nothing is extracted.
func Apply(env *domain.Envelope, rules domain.ExtractSpec) (domain.Vars, []domain.ExtractResult) {
	if len(rules) == 0 {
		return domain.Vars{}, []domain.ExtractResult{}
	}

	names := make([]string, 0, len(rules))
	for k := range rules {
		names = append(names, k)
	}
	sort.Strings(names)

	var (
		doc    any
		docErr error
	)
	if env == nil {
		docErr = fmt.Errorf("no result to extract from")
	} else {
		doc, docErr = env.Document()
	}

	extracted := domain.Vars{}
	results := make([]domain.ExtractResult, 0, len(names))
	failed := func(name, format string, args ...any) {
		results = append(results, domain.ExtractResult{
			Name:    name,
			Success: false,
			Message: fmt.Sprintf("extract %q: ", name) + fmt.Sprintf(format, args...),
		})
	}

	for _, name := range names {
		expr := strings.TrimSpace(rules[name])
		switch {
		case docErr != nil:
			failed(name, "%v", docErr)
			continue
		case expr == "":
			failed(name, "empty jsonpath expression")
			continue
		}

		val, err := jsonpath.Get(expr, doc)
		if err != nil {
			failed(name, "(%s) jsonpath error: %v", expr, err)
			continue
		}
		if isEmpty(val) {
			failed(name, "(%s) no value found", expr)
			continue
		}
		s, err := toString(val)
		if err != nil {
			failed(name, "(%s) cannot convert value: %v", expr, err)
			continue
		}

		extracted[name] = s
		results = append(results, domain.ExtractResult{
			Name:    name,
			Success: true,
			Message: fmt.Sprintf("extracted %q = %s", name, s),
		})
	}

	return extracted, results
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// toString renders a JSONPath value so it can be fed back into an input.
// Single-element arrays unwrap; other composites become JSON.
func toString(v any) (string, error) {
	switch t := v.(type) {
	case []any:
		if len(t) == 1 {
			return toString(t[0])
		}
		b, err := json.Marshal(t)
		return string(b), err
	case map[string]any:
		b, err := json.Marshal(t)
		return string(b), err
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return fmt.Sprint(t), nil
	}
}
