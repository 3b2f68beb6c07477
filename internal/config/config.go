package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/indaco/relmeta/internal/logging"
	"github.com/indaco/relmeta/internal/output"
)

// Environment variables read by Load.
const (
	EnvFormat     = "RELMETA_FORMAT"
	EnvNoColor    = "RELMETA_NO_COLOR"
	EnvNoColorStd = "NO_COLOR"
	EnvLogLevel   = "LOG_LEVEL"
)

// Config holds runtime settings for relmeta.
// Values seed the CLI flag defaults; flags given on the command line win.
type Config struct {
	Format   string
	NoColor  bool
	LogLevel string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:   output.DefaultFormat.String(),
		LogLevel: logging.DefaultLevel,
	}
}

// LoadConfigFn is kept as a variable so tests can substitute the loader.
var LoadConfigFn = loadConfig

// loadConfig overlays environment variables on the defaults.
func loadConfig() (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Format = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	// NO_COLOR disables color when set to any non-empty value (no-color.org).
	if os.Getenv(EnvNoColorStd) != "" {
		cfg.NoColor = true
	}

	if v := strings.TrimSpace(os.Getenv(EnvNoColor)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: expected a boolean", EnvNoColor, v)
		}
		cfg.NoColor = cfg.NoColor || b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
