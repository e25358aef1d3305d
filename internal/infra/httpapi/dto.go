package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/calckit/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// calculateRequest accepts strings or JSON numbers for each field.
type calculateRequest struct {
	Inputs map[string]any `json:"inputs" validate:"required,max=32"`
}

func (req *calculateRequest) Bind(_ *http.Request) error {
	return validate.Struct(req)
}

func (req *calculateRequest) inputSet() (domain.InputSet, error) {
	out := make(domain.InputSet, len(req.Inputs))
	for k, v := range req.Inputs {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("field %s: expected a string or number", k)
		}
	}
	return out, nil
}

type expressionRequest struct {
	Expression string `json:"expression" validate:"required,max=256"`
}

func (req *expressionRequest) Bind(_ *http.Request) error {
	return validate.Struct(req)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type calculatorResponse struct {
	domain.Descriptor
	Fields    []domain.Field `json:"fields"`
	Available bool           `json:"available"`
}

// ErrResponse renders an error with its classification.
type ErrResponse struct {
	HTTPStatusCode int    `json:"-"`
	Kind           string `json:"kind"`
	Error          string `json:"error"`
}

func (e *ErrResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errBadRequest(err error) render.Renderer {
	msg := err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}
	return &ErrResponse{HTTPStatusCode: http.StatusBadRequest, Kind: "bad_request", Error: msg}
}

// errCalculation maps a classified error to its HTTP status.
func errCalculation(err error) render.Renderer {
	kind := domain.KindOf(err)
	return &ErrResponse{HTTPStatusCode: statusFor(kind), Kind: string(kind), Error: err.Error()}
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput, domain.KindIncomplete, domain.KindUnsupported, domain.KindDegenerate:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
