package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
	ucassert "github.com/aalvaropc/calckit/internal/usecase/assert"
	ucextract "github.com/aalvaropc/calckit/internal/usecase/extract"
)

type RunWorksheet struct {
	sheets   ports.WorksheetLoader
	calc     *Calculate
	store    ports.ArtifactStore
	resolver *domain.VarResolver
	now      func() time.Time
}

type RunOption func(*RunWorksheet)

func WithRunResolver(vr *domain.VarResolver) RunOption {
	return func(uc *RunWorksheet) {
		if vr != nil {
			uc.resolver = vr
		}
	}
}

func WithRunClock(now func() time.Time) RunOption {
	return func(uc *RunWorksheet) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewRunWorksheet wires the run. store may be nil to skip saving artifacts.
func NewRunWorksheet(sl ports.WorksheetLoader, calc *Calculate, store ports.ArtifactStore, opts ...RunOption) *RunWorksheet {
	uc := &RunWorksheet{
		sheets:   sl,
		calc:     calc,
		store:    store,
		resolver: domain.NewVarResolver(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs every entry of the worksheet at path in order and returns the
// run and the saved artifact id (empty when not saved).
//
// Variable precedence: worksheet vars < overrides < values extracted by
// earlier entries. Entry failures are recorded in the run, not returned;
// cancellation stops the run and returns the partial result.
func (uc *RunWorksheet) Execute(ctx context.Context, path string, overrides domain.Vars) (domain.RunResult, string, error) {
	run := domain.RunResult{
		WorksheetPath: path,
		StartedAt:     uc.now(),
		Results:       []domain.EntryResult{},
	}

	ws, err := uc.sheets.LoadWorksheet(path)
	if err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}
	run.WorksheetName = ws.Name

	vars := domain.Merge(ws.Vars, overrides)

	for _, entry := range ws.Entries {
		if err := ctx.Err(); err != nil {
			run.EndedAt = uc.now()
			return run, "", err
		}

		er := uc.runEntry(ctx, entry, vars)
		for k, v := range er.Extracted {
			vars[k] = v
		}
		if er.Failed() {
			uc.calc.log.Info("sheet.entry.failed", "worksheet", ws.Name, "entry", entry.Name, "calculator", entry.Calculator)
		}
		run.Results = append(run.Results, er)
	}

	run.EndedAt = uc.now()

	if uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", err
	}
	return run, id, nil
}

func (uc *RunWorksheet) runEntry(ctx context.Context, entry domain.Entry, vars domain.Vars) domain.EntryResult {
	er := domain.EntryResult{
		Name:       entry.Name,
		Calculator: entry.Calculator,
		Inputs:     entry.Inputs,
		Assertions: []domain.AssertionResult{},
		Extracts:   []domain.ExtractResult{},
		Extracted:  domain.Vars{},
	}

	resolved, err := uc.resolve(entry, vars)
	if err != nil {
		er.Error = domain.NewCalcError(err)
	} else {
		er.Inputs = resolved.Inputs
		res, calcErr := uc.calc.Execute(ctx, resolved.Calculator, resolved.Inputs)
		if calcErr != nil {
			er.Error = domain.NewCalcError(calcErr)
		} else {
			env := domain.Wrap(resolved.Calculator, res)
			er.Envelope = &env
		}
	}

	er.Assertions = ucassert.Evaluate(entry.Assert, er.Envelope, er.Error)
	er.Extracted, er.Extracts = ucextract.Apply(er.Envelope, entry.Extract)
	return er
}

func (uc *RunWorksheet) resolve(entry domain.Entry, vars domain.Vars) (domain.Entry, error) {
	rt, err := uc.resolver.NewRuntime(vars)
	if err != nil {
		return domain.Entry{}, err
	}
	return rt.ResolveEntry(entry)
}
