package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VarResolver resolves {{var}} placeholders in worksheet input values.
// It supports built-ins: {{$timestamp}}, {{$today}} and {{$uuid}}.
type VarResolver struct {
	now    func() time.Time
	uuidV4 func() (string, error)
}

// VarResolverOption configures VarResolver.
type VarResolverOption func(*VarResolver)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) VarResolverOption {
	return func(r *VarResolver) { r.now = now }
}

// WithUUID overrides UUID generation (useful for tests).
func WithUUID(gen func() (string, error)) VarResolverOption {
	return func(r *VarResolver) { r.uuidV4 = gen }
}

func NewVarResolver(opts ...VarResolverOption) *VarResolver {
	r := &VarResolver{
		now:    time.Now,
		uuidV4: newUUID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RuntimeResolver caches built-ins for a single resolution session (one entry)
// so repeated {{$uuid}} inside multiple fields stays consistent.
type RuntimeResolver struct {
	base     Vars
	builtins Vars
	inner    *VarResolver
}

func (r *VarResolver) NewRuntime(vars Vars) (*RuntimeResolver, error) {
	now := r.now()

	u, err := r.uuidV4()
	if err != nil {
		return nil, &OpError{
			Op:   "vars.builtins.uuid",
			Kind: KindExecution,
			Err:  err,
		}
	}

	return &RuntimeResolver{
		base: Merge(vars, nil),
		builtins: Vars{
			"$timestamp": strconv.FormatInt(now.Unix(), 10),
			"$today":     now.Format(time.DateOnly),
			"$uuid":      u,
		},
		inner: r,
	}, nil
}

// ResolveString resolves placeholders in a string.
func (rr *RuntimeResolver) ResolveString(s string) (string, error) {
	return rr.inner.resolveStringWith(rr.base, rr.builtins, s)
}

// ResolveInputs resolves placeholders in every input value.
func (rr *RuntimeResolver) ResolveInputs(in InputSet) (InputSet, error) {
	out := InputSet{}
	for k, v := range in {
		rv, err := rr.ResolveString(v)
		if err != nil {
			return nil, wrapField(err, "inputs."+k)
		}
		out[k] = rv
	}
	return out, nil
}

// ResolveEntry returns a copy of e with its inputs resolved.
func (rr *RuntimeResolver) ResolveEntry(e Entry) (Entry, error) {
	in, err := rr.ResolveInputs(e.Inputs)
	if err != nil {
		return Entry{}, err
	}
	e.Inputs = in
	return e, nil
}

func (r *VarResolver) resolveStringWith(vars Vars, builtins Vars, s string) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	rest := s
	for {
		before, after, found := strings.Cut(rest, "{{")
		b.WriteString(before)
		if !found {
			return b.String(), nil
		}

		token, tail, closed := strings.Cut(after, "}}")
		if !closed {
			return "", placeholderError(errors.New("unclosed placeholder"))
		}

		name := strings.TrimSpace(token)
		if name == "" {
			return "", placeholderError(errors.New("empty placeholder"))
		}

		val, ok := builtins[name]
		if !ok {
			val, ok = vars[name]
		}
		if !ok {
			return "", &OpError{
				Op:   "vars.resolve",
				Kind: KindMissingVar,
				Err:  fmt.Errorf("%w: %s", ErrMissingVar, name),
			}
		}

		b.WriteString(val)
		rest = tail
	}
}

func placeholderError(err error) error {
	return &OpError{Op: "vars.resolve", Kind: KindInvalidConfig, Err: err}
}

func wrapField(err error, field string) error {
	return &OpError{
		Op:   "vars.resolve",
		Kind: KindOf(err),
		Err:  fmt.Errorf("%s: %w", field, err),
	}
}

func newUUID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
