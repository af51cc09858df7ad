// Package config holds the run configuration of udcheck.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/revelaction/udcheck/incident"
)

// ErrInvalidLevel is returned for a validation level outside 1..5.
var ErrInvalidLevel = errors.New("level must be between 1 and 5")

// Config is the configuration of one validation run.
type Config struct {
	Lang      string `yaml:"lang"       env:"UDCHECK_LANG"       env-default:"ud"`
	Level     int    `yaml:"level"      env:"UDCHECK_LEVEL"      env-default:"5"`
	MaxErrors int    `yaml:"max_errors" env:"UDCHECK_MAX_ERRORS" env-default:"0"`
	MaxStore  int    `yaml:"max_store"  env:"UDCHECK_MAX_STORE"  env-default:"20"`

	Quiet    bool   `yaml:"quiet"    env:"UDCHECK_QUIET"`
	Format   string `yaml:"format"   env:"UDCHECK_FORMAT"   env-default:"text"`
	Color    bool   `yaml:"color"    env:"UDCHECK_COLOR"    env-default:"true"`
	Progress bool   `yaml:"progress" env:"UDCHECK_PROGRESS"`

	// DataPath is a directory of <lang>.json files or a SQLite file.
	DataPath string `yaml:"data_path" env:"UDCHECK_DATA"`

	DeferScope string `yaml:"defer_scope" env:"UDCHECK_DEFER_SCOPE" env-default:"file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"UDCHECK_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"UDCHECK_LOG_FORMAT" env-default:"text"`
}

// Load reads the configuration from the YAML file at path, then from the
// UDCHECK_* environment variables; unset fields take their defaults. An
// empty path falls back to UDCHECK_CONFIG, and without either only the
// environment is read. The values are not validated: flags may still
// override them, so callers run Validate once they are final.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("UDCHECK_CONFIG")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the value ranges.
func (c *Config) Validate() error {
	if c.Level < 1 || c.Level > 5 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLevel, c.Level)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("max_errors must be >= 0 (got %d)", c.MaxErrors)
	}
	if c.MaxStore < 0 {
		return fmt.Errorf("max_store must be >= 0 (got %d)", c.MaxStore)
	}
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", Formats(), c.Format)
	}
	if _, err := incident.ParseDeferScope(c.DeferScope); err != nil {
		return err
	}
	if c.Lang == "" {
		return errors.New("lang must not be empty")
	}
	return nil
}

// Formats returns the supported report formats.
func Formats() []string {
	return []string{"text", "json"}
}

// Scope returns the parsed deferred-obligation scope. Validate has checked
// it already.
func (c *Config) Scope() incident.DeferScope {
	s, _ := incident.ParseDeferScope(c.DeferScope)
	return s
}
