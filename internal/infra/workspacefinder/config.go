package workspacefinder

import (
	"os"
	"strings"

	"github.com/aalvaropc/calckit/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads calckit.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, _ := ConfigPath(root)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	d := y.Calckit.Defaults
	switch f := strings.ToLower(strings.TrimSpace(d.Format)); f {
	case "":
	case "pretty", "json":
		cfg.Defaults.Format = f
	default:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  domain.ErrInvalidConfig,
		}
	}
	if d.Precision != nil {
		if *d.Precision < 0 || *d.Precision > 12 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  domain.ErrInvalidConfig,
			}
		}
		cfg.Defaults.Precision = *d.Precision
	}

	if y.Calckit.Paths.WorksheetsDir != "" {
		cfg.Paths.WorksheetsDir = y.Calckit.Paths.WorksheetsDir
	}
	if y.Calckit.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Calckit.Paths.RunsDir
	}

	if y.Calckit.Server.Addr != "" {
		cfg.Server.Addr = y.Calckit.Server.Addr
	}
	if len(y.Calckit.Server.CORSOrigins) > 0 {
		cfg.Server.CORSOrigins = y.Calckit.Server.CORSOrigins
	}

	return cfg, nil
}

type yamlConfig struct {
	Calckit struct {
		Defaults struct {
			Format    string `yaml:"format"`
			Precision *int   `yaml:"precision"`
		} `yaml:"defaults"`

		Paths struct {
			WorksheetsDir string `yaml:"worksheets_dir"`
			RunsDir       string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Server struct {
			Addr        string   `yaml:"addr"`
			CORSOrigins []string `yaml:"cors_origins"`
		} `yaml:"server"`
	} `yaml:"calckit"`
}
