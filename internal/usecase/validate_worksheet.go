package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
)

type ValidateWorksheet struct {
	sheets   ports.WorksheetLoader
	catalog  ports.CalculatorCatalog
	resolver *domain.VarResolver
}

type ValidateOption func(*ValidateWorksheet)

func WithVarResolver(vr *domain.VarResolver) ValidateOption {
	return func(uc *ValidateWorksheet) {
		if vr != nil {
			uc.resolver = vr
		}
	}
}

func NewValidateWorksheet(sl ports.WorksheetLoader, cat ports.CalculatorCatalog, opts ...ValidateOption) *ValidateWorksheet {
	uc := &ValidateWorksheet{
		sheets:   sl,
		catalog:  cat,
		resolver: domain.NewVarResolver(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks a worksheet without calculating anything: every calculator
// exists and every {{var}} is defined by the worksheet, the overrides or an
// earlier entry's extract.
func (uc *ValidateWorksheet) Execute(ctx context.Context, path string, overrides domain.Vars) error {
	ws, err := uc.sheets.LoadWorksheet(path)
	if err != nil {
		return err
	}

	vars := domain.Merge(ws.Vars, overrides)

	for i, entry := range ws.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := uc.catalog.Lookup(entry.Calculator); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entry.Name, err)
		}

		rt, err := uc.resolver.NewRuntime(vars)
		if err != nil {
			return err
		}
		if _, err := rt.ResolveEntry(entry); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entry.Name, err)
		}

		// Extracted names become available to later entries.
		for k := range entry.Extract {
			if _, ok := vars[k]; !ok {
				vars[k] = "x"
			}
		}
	}
	return nil
}
