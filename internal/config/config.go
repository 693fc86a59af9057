// Package config loads the service configuration from YAML, applying
// defaults for anything the file leaves out. CLI flags override the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the service.
type Config struct {
	Addr        string `yaml:"addr"`
	PersistPath string `yaml:"persist_path"`
	LogLevel    string `yaml:"log_level"`
	// Solver selects the engine: "dlx" or "backtrack".
	Solver string `yaml:"solver"`

	Generator GeneratorConfig `yaml:"generator"`
}

// GeneratorConfig tunes board generation.
type GeneratorConfig struct {
	DefaultDifficulty string `yaml:"default_difficulty"`
	// MaxNodes bounds a single solve; 0 means unlimited.
	MaxNodes int `yaml:"max_nodes"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Solver:      "dlx",
		Generator: GeneratorConfig{
			DefaultDifficulty: "medium",
		},
	}
}

// Load reads path into a Config on top of the defaults. An empty path or a
// missing file yields the defaults without error; a malformed file does not.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the rest of the system would trip over.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.Solver {
	case "dlx", "backtrack", "backtracking":
	default:
		return fmt.Errorf("unknown solver %q", c.Solver)
	}
	if c.Generator.MaxNodes < 0 {
		return fmt.Errorf("generator.max_nodes must not be negative")
	}
	return nil
}
