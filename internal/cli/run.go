package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/format"
	"github.com/aalvaropc/calckit/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var sheet string
	var vars []string
	var noSave bool
	var outFormat string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a worksheet from a calckit workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sheetPath, err := resolveSheetPath(ws, sheet)
			if err != nil {
				return err
			}

			overrides, err := parseAssignments(vars)
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			f := outFormat
			if f == "" {
				f = ws.cfg.Defaults.Format
			}

			uc := usecase.NewRunWorksheet(ws.sheets, ws.calc, store)

			run, runID, err := uc.Execute(cmd.Context(), sheetPath, domain.Vars(overrides))
			if err != nil {
				// A failed save still leaves a complete run worth printing.
				if len(run.Results) > 0 {
					_ = printRun(os.Stdout, run, runID, f, ws.cfg.Defaults.Precision)
				}
				return err
			}

			if err := printRun(os.Stdout, run, runID, f, ws.cfg.Defaults.Precision); err != nil {
				return err
			}

			if fails := run.Failures(); fails > 0 {
				return fmt.Errorf("run failed (%d failed entr%s)", fails, plural(fails, "y", "ies"))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&sheet, "sheet", "s", "", "Worksheet name or path (required)")
	c.Flags().StringArrayVar(&vars, "var", nil, "Override a worksheet variable as name=value (repeatable)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&outFormat, "format", "", "Output format: pretty|json (default from calckit.yaml)")

	_ = c.MarkFlagRequired("sheet")
	return c
}

func printRun(w io.Writer, run domain.RunResult, runID string, outFormat string, precision int) error {
	switch outFormat {
	case "json":
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return writeJSON(w, payload)
	case "pretty", "":
		printPrettyRun(w, run, runID, precision)
		return nil
	default:
		return unsupportedFormat(outFormat)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, runID string, precision int) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Worksheet: %s\n", run.WorksheetName)
	fmt.Fprintf(w, "Started:   %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total)
	if runID != "" {
		fmt.Fprintf(w, "Run ID:    %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		status := "OK"
		if r.Failed() {
			status = "FAIL"
		}

		fmt.Fprintf(w, "- [%s] %s (%s)\n", status, r.Name, r.Calculator)

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
		}
		if r.Envelope != nil {
			for _, l := range format.Lines(r.Envelope.Result, precision) {
				if l.Label == "" {
					fmt.Fprintf(w, "  %s\n", l.Value)
					continue
				}
				fmt.Fprintf(w, "  %s: %s\n", l.Label, l.Value)
			}
		}

		if len(r.Assertions) > 0 {
			pass, fail := countAssertionPassFail(r.Assertions)
			fmt.Fprintf(w, "  assertions: %d pass / %d fail\n", pass, fail)
			for _, a := range r.Assertions {
				mark := "✓"
				if !a.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, a.Name, a.Message)
			}
		}

		if len(r.Extracts) > 0 {
			ok, bad := countExtractPassFail(r.Extracts)
			fmt.Fprintf(w, "  extracts: %d ok / %d fail\n", ok, bad)
			for _, e := range r.Extracts {
				mark := "✓"
				if !e.Success {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, e.Name, e.Message)
			}
		}

		if len(r.Extracted) > 0 {
			fmt.Fprintf(w, "  extracted vars:\n")
			for _, k := range sortedKeys(r.Extracted) {
				fmt.Fprintf(w, "    - %s = %s\n", k, r.Extracted[k])
			}
		}

		fmt.Fprintln(w)
	}
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}

func countExtractPassFail(in []domain.ExtractResult) (ok int, bad int) {
	for _, e := range in {
		if e.Success {
			ok++
		} else {
			bad++
		}
	}
	return ok, bad
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func sortedKeys(vars domain.Vars) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
