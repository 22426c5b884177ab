// Package config loads keypad CLI settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/maisem/keypad"
)

// Config holds settings for scoring runs.
type Config struct {
	// Robots lists the robot chain lengths to score, one result each.
	Robots []int `yaml:"robots"`
	// CacheDB is an optional SQLite path used to persist computed costs.
	CacheDB string `yaml:"cache_db"`
	// Parallel scores codes concurrently.
	Parallel bool `yaml:"parallel"`
	// Metrics dumps cache metrics after a run.
	Metrics bool `yaml:"metrics"`
}

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	keypad.MustDo(yaml.Unmarshal(defaultYAML, &cfg))
	return cfg
}

// Validate reports whether cfg is usable.
func (c Config) Validate() error {
	if len(c.Robots) == 0 {
		return fmt.Errorf("config: robots must not be empty")
	}
	for _, r := range c.Robots {
		if r < 0 {
			return fmt.Errorf("config: negative robot count %d", r)
		}
	}
	return nil
}

// Load loads configuration.
// Search order: customPath -> ~/.config/keypad/config.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), fmt.Errorf("failed to parse config %s: %w", p, err)
			}
		}
	}
	return cfg, cfg.Validate()
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keypad", "config.yaml")
}
