package domain

// Config represents the calckit workspace configuration loaded from calckit.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Server   ServerConfig
}

type DefaultsConfig struct {
	// Format is the default CLI output format (pretty|json).
	Format string
	// Precision is the number of decimals used when rendering plain numbers.
	Precision int
}

type PathsConfig struct {
	WorksheetsDir string
	RunsDir       string
}

type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if calckit.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Format:    "pretty",
			Precision: 2,
		},
		Paths: PathsConfig{
			WorksheetsDir: "worksheets",
			RunsDir:       "runs",
		},
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
	}
}
