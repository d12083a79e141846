// Package settings reads process-wide defaults from the environment.
package settings

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings holds defaults that command-line flags may override.
type Settings struct {
	// ConfigFile is the build file name looked up inside every project root.
	ConfigFile string `env:"FRESH_CONFIG" envDefault:"fresh.yaml"`
	// Directories are the project roots built when no -d flag is given.
	Directories []string `env:"FRESH_DIRECTORIES" envDefault:"." envSeparator:","`
	// Shell interprets task commands.
	Shell string `env:"FRESH_SHELL" envDefault:"/bin/sh"`
	// CommandPrefix is prepended to every task command.
	CommandPrefix string `env:"FRESH_COMMAND_PREFIX"`
	// LogLevel is the minimum level written by the logger.
	LogLevel domain.LogLevel `env:"FRESH_LOG_LEVEL" envDefault:"info"`
	// LogJSON switches the logger to JSON output.
	LogJSON bool `env:"FRESH_LOG_JSON"`
	// WatchDebounce is how long watch mode waits for changes to settle.
	WatchDebounce time.Duration `env:"FRESH_WATCH_DEBOUNCE" envDefault:"200ms"`
}

// Parse reads settings from environ, a list of KEY=VALUE pairs.
func Parse(environ []string) (*Settings, error) {
	var s Settings

	err := env.ParseWithOptions(&s, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment settings")
	}

	return &s, nil
}
