package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/infra/runstore"
	"github.com/aalvaropc/calckit/internal/infra/workspacefinder"
	"github.com/aalvaropc/calckit/internal/infra/yamlsheet"
	"github.com/aalvaropc/calckit/internal/ports"
	"github.com/aalvaropc/calckit/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	sheets ports.WorksheetLoader
	store  ports.ArtifactStore
	calc   *usecase.Calculate
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	sheets := yamlsheet.NewLoader(
		yamlsheet.WithWorksheetsDir(cfg.Paths.WorksheetsDir),
	)

	store := runstore.NewJSONStore(root, cfg, runstore.WithIndex(true))

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		sheets: sheets,
		store:  store,
		calc:   newCalculate(nil),
	}, nil
}

// optionalConfig returns the workspace config when the current directory sits
// inside a workspace, and the defaults otherwise.
func optionalConfig() domain.Config {
	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig()
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return domain.DefaultConfig()
	}
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return domain.DefaultConfig()
	}
	return cfg
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `calckit init`): %w", wd, err)
	}
	return root, nil
}

func resolveSheetPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("worksheet is required (use --sheet or -s)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	sheetsDir := filepath.Join(ws.root, ws.cfg.Paths.WorksheetsDir)

	if hasYAMLExt(in) {
		p := filepath.Join(sheetsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(sheetsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match by the worksheet "name" field.
	refs, err := ws.sheets.ListWorksheets(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("worksheet %q not found in %q", in, sheetsDir)
}

// parseAssignments turns repeated key=value flags into a map. Values may be
// empty; keys may not.
func parseAssignments(in []string) (map[string]string, error) {
	out := map[string]string{}
	for _, kv := range in {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected key=value)", kv)
		}
		out[k] = v
	}
	return out, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	return yamlsheet.HasYAMLExt(s)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
