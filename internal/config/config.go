// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/tally/internal/common"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultDatabasePath is used when no database path is configured.
const DefaultDatabasePath = "$HOME/.local/share/tally/tally.db"

// Config holds the resolved runtime configuration.
type Config struct {
	DatabasePath string
	Backend      string
	LogLevel     string
	LogFormat    string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from v. Paths are expanded but not validated;
// call Validate before use.
func Load(v *viper.Viper) Config {
	SetDefaults(v)

	cfg := Config{
		DatabasePath: ExpandPath(v.GetString("database.path")),
		Backend:      strings.ToLower(v.GetString("storage.backend")),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
	}

	if v.GetBool("storage.ephemeral") {
		cfg.Backend = BackendMemory
	}

	return cfg
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			problems = append(problems, "database path cannot be empty when using the sqlite backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %s, %s", c.Backend, BackendSQLite, BackendMemory))
	}

	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be console or json", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", common.ErrInvalidConfig, strings.Join(problems, "\n- "))
	}

	return nil
}

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
