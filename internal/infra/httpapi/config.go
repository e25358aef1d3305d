package httpapi

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/aalvaropc/calckit/internal/domain"
)

// Config holds the server settings. Environment variables override the
// values taken from calckit.yaml; unset variables leave them alone.
type Config struct {
	Addr        string   `envconfig:"CALCKIT_ADDR"`
	LogLevel    string   `envconfig:"CALCKIT_LOG_LEVEL"`
	CORSOrigins []string `envconfig:"CALCKIT_CORS_ORIGINS"`
}

func LoadConfig(base domain.ServerConfig) (Config, error) {
	cfg := Config{
		Addr:        base.Addr,
		LogLevel:    "info",
		CORSOrigins: base.CORSOrigins,
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "httpapi.config",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	if _, err := cfg.Level(); err != nil {
		return cfg, &domain.OpError{
			Op:   "httpapi.config",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = domain.DefaultConfig().Server.Addr
	}
	return cfg, nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, domain.ErrInvalidConfig)
	}
	return lvl, nil
}
