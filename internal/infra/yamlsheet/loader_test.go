package yamlsheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/calckit/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadWorksheet_Valid(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "house.yaml")

	writeFile(t, p, `
name: House budget
vars:
  principal: 200000
entries:
  - name: mortgage
    calculator: mortgage
    inputs:
      principal: "{{principal}}"
      rate: 6.5
      years: 30
    assert:
      jsonpath:
        $.result.monthly_payment:
          approx: 1264.14
          tolerance: 0.01
    extract:
      payment: $.result.monthly_payment
  - name: share
    calculator: percentage
    inputs:
      value: "{{payment}}"
      percentage: 10
  - name: broken
    calculator: bmi
    inputs:
      height:
      weight: 150
    assert:
      error: incomplete
`)

	ws, err := NewLoader().LoadWorksheet(p)
	if err != nil {
		t.Fatalf("LoadWorksheet error: %v", err)
	}

	if ws.Name != "House budget" {
		t.Fatalf("expected name=House budget, got=%s", ws.Name)
	}
	if ws.Vars["principal"] != "200000" {
		t.Fatalf("expected principal var, got=%v", ws.Vars)
	}
	if len(ws.Entries) != 3 {
		t.Fatalf("expected 3 entries, got=%d", len(ws.Entries))
	}

	e := ws.Entries[0]
	if e.Calculator != domain.CalcMortgage {
		t.Fatalf("expected mortgage, got=%s", e.Calculator)
	}
	if e.Inputs["rate"] != "6.5" || e.Inputs["years"] != "30" {
		t.Fatalf("unexpected inputs: %v", e.Inputs)
	}
	a, ok := e.Assert.JSONPath["$.result.monthly_payment"]
	if !ok || a.Approx == nil || *a.Approx != 1264.14 || a.Tolerance != 0.01 {
		t.Fatalf("unexpected assertion: %+v", a)
	}
	if e.Extract["payment"] != "$.result.monthly_payment" {
		t.Fatalf("unexpected extract: %v", e.Extract)
	}

	if ws.Entries[1].Extract == nil {
		t.Fatalf("expected non-nil extract spec")
	}

	broken := ws.Entries[2]
	if broken.Inputs["height"] != "" {
		t.Fatalf("expected blank height, got=%q", broken.Inputs["height"])
	}
	if broken.Assert.Error == nil || *broken.Assert.Error != domain.KindIncomplete {
		t.Fatalf("expected error assertion incomplete, got=%v", broken.Assert.Error)
	}
}

func TestLoadWorksheet_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing name": `
entries:
  - name: a
    calculator: bmi
`,
		"missing entry name": `
name: x
entries:
  - calculator: bmi
`,
		"missing calculator": `
name: x
entries:
  - name: a
`,
		"nested input": `
name: x
entries:
  - name: a
    calculator: bmi
    inputs:
      height: [1, 2]
`,
		"unknown error kind": `
name: x
entries:
  - name: a
    calculator: bmi
    assert:
      error: exploded
`,
		"bad yaml": "name: [",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "bad.yaml")
			writeFile(t, p, content)

			_, err := NewLoader().LoadWorksheet(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got=%v", err)
			}
		})
	}
}

func TestLoadWorksheet_FieldPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, p, `
name: x
entries:
  - name: a
    calculator: bmi
  - name: b
`)

	_, err := NewLoader().LoadWorksheet(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got=%v", err)
	}
	if want := "entries[1].calculator"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in %q", want, err.Error())
	}
}

func TestLoadWorksheet_Missing(t *testing.T) {
	_, err := NewLoader().LoadWorksheet(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got=%v", err)
	}
}

func TestListWorksheets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "worksheets", "b.yaml"), "name: Zeta\nentries: []\n")
	writeFile(t, filepath.Join(root, "worksheets", "a.yml"), "entries: []\n")
	writeFile(t, filepath.Join(root, "worksheets", "notes.txt"), "ignored")

	refs, err := NewLoader().ListWorksheets(root)
	if err != nil {
		t.Fatalf("ListWorksheets error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got=%d", len(refs))
	}
	if refs[0].Name != "Zeta" || refs[1].Name != "a" {
		t.Fatalf("expected sorted [Zeta a], got=%v", refs)
	}
}

func TestListWorksheets_CustomDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sheets", "demo.yaml"), "name: Demo\n")

	refs, err := NewLoader(WithWorksheetsDir("sheets")).ListWorksheets(root)
	if err != nil {
		t.Fatalf("ListWorksheets error: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "Demo" {
		t.Fatalf("unexpected refs: %v", refs)
	}
}

func TestListWorksheets_MissingDir(t *testing.T) {
	_, err := NewLoader().ListWorksheets(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got=%v", err)
	}
}
