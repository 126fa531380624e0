// Package config loads augur configuration from TOML, YAML, or JSON.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for augur.
type Config struct {
	// File discovery settings
	Scan ScanConfig `koanf:"scan" toml:"scan"`

	// Warning thresholds for reported metrics
	Thresholds ThresholdConfig `koanf:"thresholds" toml:"thresholds"`

	// Result cache settings
	Cache CacheConfig `koanf:"cache" toml:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// ScanConfig controls which files are discovered.
type ScanConfig struct {
	IgnoreDirs  []string `koanf:"ignore_dirs" toml:"ignore_dirs"`
	Patterns    []string `koanf:"patterns" toml:"patterns"`
	Gitignore   bool     `koanf:"gitignore" toml:"gitignore"`
	MaxFileSize int64    `koanf:"max_file_size" toml:"max_file_size"`
}

// ThresholdConfig defines metric warning thresholds.
type ThresholdConfig struct {
	MaintainabilityWarn float64 `koanf:"maintainability_warn" toml:"maintainability_warn"`
	CognitiveWarn       int     `koanf:"cognitive_warn" toml:"cognitive_warn"`
	DebtWarnHours       float64 `koanf:"debt_warn_hours" toml:"debt_warn_hours"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled  bool   `koanf:"enabled" toml:"enabled"`
	Dir      string `koanf:"dir" toml:"dir"`
	TTLHours int    `koanf:"ttl_hours" toml:"ttl_hours"` // 0 disables expiry
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			IgnoreDirs: []string{
				"venv",
				".venv",
				"env",
				".env",
				"__pycache__",
				".git",
				".hg",
				".svn",
				"node_modules",
				".tox",
				".pytest_cache",
				".mypy_cache",
				"dist",
				"build",
				"egg-info",
			},
			Patterns:    []string{},
			Gitignore:   true,
			MaxFileSize: 1 << 20, // 1 MiB
		},
		Thresholds: ThresholdConfig{
			MaintainabilityWarn: 65.0,
			CognitiveWarn:       15,
			DebtWarnHours:       2.0,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Dir:      ".augur/cache",
			TTLHours: 24,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"augur.toml",
		"augur.yaml",
		"augur.yml",
		"augur.json",
		".augur.toml",
		".augur.yaml",
		".augur.yml",
		".augur.json",
	}

	searchDirs := []string{".", ".augur"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
