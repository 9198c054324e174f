// Package config handles loading and managing cvss configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir and File name the config location searched for by FindConfigFile.
const (
	Dir  = ".cvss"
	File = "config.yaml"
)

// Config is the top-level configuration for cvss.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Output  OutputConfig  `yaml:"output"`
}

// ScoringConfig controls vector parsing and the base formula.
type ScoringConfig struct {
	Strict         bool   `yaml:"strict"`          // reject trailing metric groups
	ScopeWeighting string `yaml:"scope_weighting"` // impact or total
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format  string `yaml:"format"` // text or json
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Strict:         false,
			ScopeWeighting: "impact",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Scoring.ScopeWeighting {
	case "", "impact", "total":
	default:
		return fmt.Errorf("scoring.scope_weighting must be impact or total, got %q", c.Scoring.ScopeWeighting)
	}
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}

// FindConfigFile looks for .cvss/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, Dir, File)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// UserConfigFile returns the per-user config path, e.g.
// ~/.config/cvss/config.yaml, or "" if it cannot be determined.
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cvss", File)
}

// Resolve picks the config path to load: an explicit path wins, then a
// project file found from dir upwards, then the per-user file. It returns
// "" when none exists.
func Resolve(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if p := FindConfigFile(dir); p != "" {
		return p
	}
	if p := UserConfigFile(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
