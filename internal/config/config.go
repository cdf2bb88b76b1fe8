package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server and storage settings, loaded from the environment.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory (resolved by the caller).
	DBPath string `env:"WAYFARE_DB"`

	// Addr is the HTTP listen address for `wayfare serve`.
	Addr string `env:"WAYFARE_ADDR" envDefault:":8080"`

	// CORSOrigin is the single allowed browser origin for the API.
	CORSOrigin string `env:"WAYFARE_CORS_ORIGIN" envDefault:"http://localhost:5173"`

	// LogLevel selects the zap level for the server (debug, info, warn, error).
	LogLevel string `env:"WAYFARE_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
