package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/ports"
)

// ConfigFile marks the root of a calckit workspace. The .yml spelling is
// accepted as well.
const ConfigFile = "calckit.yaml"

var configNames = []string{ConfigFile, "calckit.yml"}

// Finder walks up from a directory (or a file inside one) to the nearest
// directory holding a calckit config file.
type Finder struct{}

func NewFinder() *Finder {
	return &Finder{}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	cfg, err := f.FindConfig(startDir)
	if err != nil {
		return "", err
	}
	return filepath.Dir(cfg), nil
}

// FindConfig returns the path of the config file that marks the workspace
// enclosing start.
func (f *Finder) FindConfig(start string) (string, error) {
	if start == "" {
		return "", findErr(domain.KindInvalidConfig, start, errors.New("start directory is empty"))
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", findErr(domain.KindExecution, start, err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if p, ok := ConfigPath(dir); ok {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", findErr(domain.KindNotFound, start, domain.ErrNotFound)
		}
		dir = parent
	}
}

// ConfigPath reports the config file inside root, preferring calckit.yaml.
func ConfigPath(root string) (string, bool) {
	for _, name := range configNames {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return filepath.Join(root, ConfigFile), false
}

func findErr(kind domain.ErrorKind, path string, err error) error {
	return &domain.OpError{Op: "workspacefinder.findroot", Kind: kind, Path: path, Err: err}
}
