package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/formula"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		_, ok := formula.ParseUnit(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("fraction_op", func(fl validator.FieldLevel) bool {
		_, err := formula.ParseFractionOperator(fl.Field().String())
		return err == nil
	})
	return v
}

// checkParams validates s and reports failures as an OpError of kind.
func checkParams(id domain.CalculatorID, s any, kind domain.ErrorKind, sentinel error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return &domain.OpError{
		Op:   "calc.validate",
		Kind: kind,
		Path: string(id),
		Err:  fmt.Errorf("%w: %s", sentinel, describe(err)),
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "unit":
		return fmt.Sprintf("unknown unit %q", fe.Value())
	case "fraction_op":
		return fmt.Sprintf("unknown operation %q", fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
