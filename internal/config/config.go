// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvCatalog = "RESUME_CHECKER_CATALOG"
	EnvOutDir  = "RESUME_CHECKER_OUT_DIR"
	EnvTopN    = "RESUME_CHECKER_TOP_N"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Catalog  string   `json:"catalog,omitempty"`                        // Path to a YAML or JSON catalog
	TopN     int      `json:"top_n,omitempty" validate:"gte=0,lte=100"` // Role recommendations to show
	OutDir   string   `json:"out_dir,omitempty"`                        // Directory for saved reports
	Keywords []string `json:"keywords,omitempty" validate:"dive,required"`
	Verbose  bool     `json:"verbose,omitempty"`  // Debug logging and step output
	NoColor  bool     `json:"no_color,omitempty"` // Disable colored output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// ApplyEnv fills empty fields from environment variables. getenv is
// usually os.Getenv; the .env file has already been loaded by then.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if c.Catalog == "" {
		c.Catalog = strings.TrimSpace(getenv(EnvCatalog))
	}
	if c.OutDir == "" {
		c.OutDir = strings.TrimSpace(getenv(EnvOutDir))
	}
	if c.TopN == 0 {
		if raw := strings.TrimSpace(getenv(EnvTopN)); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("config error: %s must be an integer, got %q", EnvTopN, raw)
			}
			c.TopN = n
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if len(result.Keywords) == 0 {
		result.Keywords = defaults.Keywords
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
