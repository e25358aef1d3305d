package yamlsheet

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
)

type Loader struct {
	worksheetsDir string
}

type Option func(*Loader)

func WithWorksheetsDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.worksheetsDir = dir
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{worksheetsDir: "worksheets"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.WorksheetLoader = (*Loader)(nil)

func (l *Loader) LoadWorksheet(path string) (domain.Worksheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Worksheet{}, &domain.OpError{
			Op:   "yamlsheet.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yw yamlWorksheet
	if err := yaml.Unmarshal(b, &yw); err != nil {
		return domain.Worksheet{}, &domain.OpError{
			Op:   "yamlsheet.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapWorksheet(path, yw)
}

// ListWorksheets returns the YAML files in the worksheets directory, named by
// their `name` field or, failing that, their file name.
func (l *Loader) ListWorksheets(root string) ([]domain.WorksheetRef, error) {
	dir := filepath.Join(root, l.worksheetsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsheet.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.WorksheetRef
	for _, e := range entries {
		if e.IsDir() || !HasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		name := readName(p)
		if strings.TrimSpace(name) == "" {
			name = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		refs = append(refs, domain.WorksheetRef{Name: name, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readName(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return ""
	}
	return v.Name
}

func HasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
