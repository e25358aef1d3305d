// Package assert evaluates worksheet assertions against a calculation outcome.
package assert

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/calckit/internal/domain"
)

// DefaultTolerance applies to approx checks that set no tolerance.
const DefaultTolerance = 1e-9

func pass(name, format string, args ...any) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}

// Error checks that a calculation failed with the expected kind.
func Error(expected domain.ErrorKind, got *domain.CalcError) domain.AssertionResult {
	switch {
	case got == nil:
		return fail("error", "expected %s error, calculation succeeded", expected)
	case got.Kind != expected:
		return fail("error", "expected %s error, got %s: %s", expected, got.Kind, got.Message)
	default:
		return pass("error", "failed with %s as expected", got.Kind)
	}
}

// Evaluate applies spec to the outcome of one entry: env on success, calcErr
// on failure. JSONPath checks run in expression order and all fail when there
// is no envelope to query.
func Evaluate(spec domain.AssertionsSpec, env *domain.Envelope, calcErr *domain.CalcError) []domain.AssertionResult {
	out := []domain.AssertionResult{}

	if spec.Error != nil {
		out = append(out, Error(*spec.Error, calcErr))
	}

	if len(spec.JSONPath) == 0 {
		return out
	}

	exprs := make([]string, 0, len(spec.JSONPath))
	for e := range spec.JSONPath {
		exprs = append(exprs, e)
	}
	sort.Strings(exprs)

	var (
		doc    any
		docErr error
	)
	if env == nil {
		docErr = fmt.Errorf("no result to inspect")
	} else {
		doc, docErr = env.Document()
	}

	for _, expr := range exprs {
		var val any
		getErr := docErr
		if getErr == nil {
			val, getErr = jsonpath.Get(expr, doc)
		}
		out = append(out, jsonPathChecks(expr, spec.JSONPath[expr], val, getErr)...)
	}
	return out
}

func jsonPathChecks(expr string, a domain.JSONPathAssertion, val any, getErr error) []domain.AssertionResult {
	var out []domain.AssertionResult
	if a.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if a.Eq != nil {
		out = append(out, checkString("jsonpath.eq", expr, val, getErr, *a.Eq,
			func(s, want string) bool { return s == want }))
	}
	if a.Contains != nil {
		out = append(out, checkString("jsonpath.contains", expr, val, getErr, *a.Contains, strings.Contains))
	}
	if a.Matches != nil {
		out = append(out, checkMatches(expr, val, getErr, *a.Matches))
	}
	if a.Gt != nil {
		out = append(out, checkNumber("jsonpath.gt", expr, val, getErr, *a.Gt, ">",
			func(f, want float64) bool { return f > want }))
	}
	if a.Lt != nil {
		out = append(out, checkNumber("jsonpath.lt", expr, val, getErr, *a.Lt, "<",
			func(f, want float64) bool { return f < want }))
	}
	if a.Approx != nil {
		tol := a.Tolerance
		if tol <= 0 {
			tol = DefaultTolerance
		}
		out = append(out, checkNumber("jsonpath.approx", expr, val, getErr, *a.Approx, fmt.Sprintf("≈(±%v)", tol),
			func(f, want float64) bool { return math.Abs(f-want) <= tol }))
	}
	return out
}

func checkExists(expr string, val any, getErr error) domain.AssertionResult {
	const name = "jsonpath.exists"
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	if isEmpty(val) {
		return fail(name, "jsonpath %q: expected value to exist, got empty", expr)
	}
	return pass(name, "jsonpath %q exists", expr)
}

func checkString(name, expr string, val any, getErr error, want string, ok func(got, want string) bool) domain.AssertionResult {
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	s, err := toString(val)
	if err != nil {
		return fail(name, "jsonpath %q: %v", expr, err)
	}
	if !ok(s, want) {
		return fail(name, "jsonpath %q: expected %q, got %q", expr, want, s)
	}
	return pass(name, "jsonpath %q: %q", expr, s)
}

func checkMatches(expr string, val any, getErr error, pattern string) domain.AssertionResult {
	const name = "jsonpath.matches"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fail(name, "jsonpath %q: invalid regex %q: %v", expr, pattern, err)
	}
	return checkString(name, expr, val, getErr, pattern, func(s, _ string) bool { return re.MatchString(s) })
}

func checkNumber(name, expr string, val any, getErr error, want float64, rel string, ok func(got, want float64) bool) domain.AssertionResult {
	if getErr != nil {
		return fail(name, "jsonpath %q: %v", expr, getErr)
	}
	f, err := toFloat(val)
	if err != nil {
		return fail(name, "jsonpath %q: %v", expr, err)
	}
	if !ok(f, want) {
		return fail(name, "jsonpath %q: expected %s %v, got %v", expr, rel, want, f)
	}
	return pass(name, "jsonpath %q: %v %s %v", expr, f, rel, want)
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

func toFloat(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
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
