package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/calckit/internal/domain"
)

type fakeSheetLoader struct {
	ws  domain.Worksheet
	err error
}

func (f fakeSheetLoader) LoadWorksheet(_ string) (domain.Worksheet, error) {
	return f.ws, f.err
}

func (f fakeSheetLoader) ListWorksheets(_ string) ([]domain.WorksheetRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

func f64p(f float64) *float64                    { return &f }
func kindp(k domain.ErrorKind) *domain.ErrorKind { return &k }

func mortgageSheet() domain.Worksheet {
	return domain.Worksheet{
		Name: "House",
		Vars: domain.Vars{"price": "100000", "rate": "6"},
		Entries: []domain.Entry{
			{
				Name:       "payment",
				Calculator: domain.CalcMortgage,
				Inputs:     domain.InputSet{"amount": "{{price}}", "rate": "{{rate}}", "years": "30"},
				Assert: domain.AssertionsSpec{
					JSONPath: map[string]domain.JSONPathAssertion{
						"$.result.monthly_payment": {Approx: f64p(599.55), Tolerance: 0.01},
					},
				},
				Extract: domain.ExtractSpec{"payment": "$.result.monthly_payment"},
			},
			{
				Name:       "yearly",
				Calculator: domain.CalcScientific,
				Inputs:     domain.InputSet{"expression": "{{payment}} * 12"},
				Assert: domain.AssertionsSpec{
					JSONPath: map[string]domain.JSONPathAssertion{
						"$.result.value": {Gt: f64p(7194), Lt: f64p(7195)},
					},
				},
			},
			{
				Name:       "missing input",
				Calculator: domain.CalcBMI,
				Inputs:     domain.InputSet{"height": "5.8"},
				Assert:     domain.AssertionsSpec{Error: kindp(domain.KindIncomplete)},
			},
		},
	}
}

func TestRunWorksheetChainsExtracts(t *testing.T) {
	store := &fakeStore{}
	start := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	uc := NewRunWorksheet(fakeSheetLoader{ws: mortgageSheet()}, newCalculate(), store,
		WithRunClock(func() time.Time { return start }))

	run, id, err := uc.Execute(context.Background(), "worksheets/house.yaml", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" || !store.saved {
		t.Fatalf("expected artifact to be saved, got id=%q", id)
	}
	if run.WorksheetName != "House" || run.WorksheetPath != "worksheets/house.yaml" {
		t.Fatalf("unexpected run header: %+v", run)
	}
	if !run.StartedAt.Equal(start) {
		t.Fatalf("expected injected clock")
	}
	if len(run.Results) != 3 {
		t.Fatalf("expected 3 entry results, got %d", len(run.Results))
	}
	if run.Results[0].Inputs["amount"] != "100000" {
		t.Fatalf("expected resolved inputs, got %v", run.Results[0].Inputs)
	}
	if run.Results[1].Envelope == nil {
		t.Fatalf("second entry should use the extracted payment: %+v", run.Results[1].Error)
	}
	if run.Failures() != 0 {
		for _, r := range run.Results {
			t.Logf("%s: err=%+v asserts=%+v", r.Name, r.Error, r.Assertions)
		}
		t.Fatalf("expected no failures, got %d", run.Failures())
	}
	if run.Results[2].Error == nil || run.Results[2].Error.Kind != domain.KindIncomplete {
		t.Fatalf("expected recorded incomplete error, got %+v", run.Results[2].Error)
	}
}

func TestRunWorksheetOverridesWin(t *testing.T) {
	uc := NewRunWorksheet(fakeSheetLoader{ws: mortgageSheet()}, newCalculate(), nil)

	run, id, err := uc.Execute(context.Background(), "x.yaml", domain.Vars{"rate": "0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("nil store should not produce an id")
	}
	if run.Results[0].Inputs["rate"] != "0" {
		t.Fatalf("override not applied: %v", run.Results[0].Inputs)
	}
	if !run.Results[0].Failed() {
		t.Fatalf("zero-rate payment should fail the approx assertion")
	}
}

func TestRunWorksheetMissingVariable(t *testing.T) {
	ws := domain.Worksheet{
		Name: "Broken",
		Entries: []domain.Entry{
			{Name: "a", Calculator: domain.CalcBMI, Inputs: domain.InputSet{"height": "{{h}}", "weight": "150"}},
		},
	}
	run, _, err := NewRunWorksheet(fakeSheetLoader{ws: ws}, newCalculate(), nil).Execute(context.Background(), "b.yaml", nil)
	if err != nil {
		t.Fatalf("entry errors are recorded, not returned: %v", err)
	}
	got := run.Results[0]
	if got.Error == nil || got.Error.Kind != domain.KindMissingVar {
		t.Fatalf("expected missing variable error, got %+v", got.Error)
	}
	if run.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", run.Failures())
	}
}

func TestRunWorksheetLoadError(t *testing.T) {
	loadErr := &domain.OpError{Op: "yamlsheet.read", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	store := &fakeStore{}
	_, _, err := NewRunWorksheet(fakeSheetLoader{err: loadErr}, newCalculate(), store).Execute(context.Background(), "nope.yaml", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected load error, got %v", err)
	}
	if store.saved {
		t.Fatalf("nothing should be saved when loading fails")
	}
}

func TestRunWorksheetStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	run, id, err := NewRunWorksheet(fakeSheetLoader{ws: mortgageSheet()}, newCalculate(), store).Execute(context.Background(), "x.yaml", nil)
	if err == nil || id != "" {
		t.Fatalf("expected store error, got id=%q err=%v", id, err)
	}
	if len(run.Results) != 3 {
		t.Fatalf("run should still be returned")
	}
}

func TestRunWorksheetStopsOnContextCancel(t *testing.T) {
	store := &fakeStore{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, id, err := NewRunWorksheet(fakeSheetLoader{ws: mortgageSheet()}, newCalculate(), store).Execute(ctx, "x.yaml", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("canceled runs are not saved")
	}
	if len(out.Results) != 0 {
		t.Fatalf("expected no entry results, got %d", len(out.Results))
	}
	if out.StartedAt.IsZero() || out.EndedAt.IsZero() {
		t.Fatalf("expected timestamps set")
	}
}
