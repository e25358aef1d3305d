package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
)

// Calculate resolves an identifier through the catalog and runs its formula.
type Calculate struct {
	catalog    ports.CalculatorCatalog
	dispatcher ports.Dispatcher
	log        *slog.Logger
	metrics    ports.MetricsRecorder
}

type CalculateOption func(*Calculate)

func WithLogger(l *slog.Logger) CalculateOption {
	return func(uc *Calculate) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithMetrics(m ports.MetricsRecorder) CalculateOption {
	return func(uc *Calculate) { uc.metrics = m }
}

func NewCalculate(cat ports.CalculatorCatalog, d ports.Dispatcher, opts ...CalculateOption) *Calculate {
	uc := &Calculate{
		catalog:    cat,
		dispatcher: d,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the calculator for id.
//
// Unknown identifiers fail with KindNotFound. Results holding NaN or ±Inf fail
// with KindDegenerate so that no front end renders them as numbers.
func (uc *Calculate) Execute(ctx context.Context, id domain.CalculatorID, inputs domain.InputSet) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := uc.catalog.Lookup(id); err != nil {
		uc.observe(id, err)
		return nil, err
	}

	res, err := uc.dispatcher.Dispatch(id, inputs)
	if err == nil && !domain.Finite(res) {
		err = &domain.OpError{
			Op:   "calc.result",
			Kind: domain.KindDegenerate,
			Path: string(id),
			Err:  domain.ErrDegenerateResult,
		}
		res = nil
	}
	uc.observe(id, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *Calculate) observe(id domain.CalculatorID, err error) {
	outcome := "ok"
	switch {
	case err == nil:
		uc.log.Debug("calc.ok", "calculator", id)
	case errors.Is(err, domain.ErrIncompleteInput):
		outcome = string(domain.KindIncomplete)
		uc.log.Debug("calc.incomplete", "calculator", id, "err", err)
	default:
		outcome = string(domain.KindOf(err))
		uc.log.Info("calc.failed", "calculator", id, "kind", outcome, "err", err)
	}
	if uc.metrics != nil {
		uc.metrics.ObserveCalculation(id, outcome)
	}
}
