// Package config holds all uismith configuration, loaded from
// .uismith/config.yaml in the project root.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"uismith/internal/logging"
)

// Config holds all uismith configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Symbol discovery configuration
	Discovery DiscoveryConfig `yaml:"discovery"`

	// Registry cache configuration
	Cache CacheConfig `yaml:"cache"`

	// LLM configuration
	LLM LLMConfig `yaml:"llm"`

	// Self-healing loop configuration
	Healing HealingConfig `yaml:"healing"`

	// Logging
	Logging logging.Config `yaml:"logging"`
}

// Default returns a Config with every section at its defaults.
func Default() Config {
	return Config{
		Name:      "uismith",
		Version:   "0.1.0",
		Discovery: DefaultDiscoveryConfig(),
		Cache:     DefaultCacheConfig(),
		LLM:       DefaultLLMConfig(),
		Healing:   DefaultHealingConfig(),
		Logging:   logging.Config{Level: "info"},
	}
}

// Load reads configuration from the given path, applying defaults for
// any section left unset. A missing file returns pure defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromProject loads .uismith/config.yaml relative to a project root.
func LoadFromProject(root string) (Config, error) {
	return Load(filepath.Join(root, ".uismith", "config.yaml"))
}

// applyDefaults backfills zero values that yaml left unset.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Discovery.MaxDepth == 0 {
		c.Discovery.MaxDepth = d.Discovery.MaxDepth
	}
	if len(c.Discovery.FilePatterns) == 0 {
		c.Discovery.FilePatterns = d.Discovery.FilePatterns
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = d.Cache.TTL
	}
	if c.Cache.Path == "" {
		c.Cache.Path = d.Cache.Path
	}
	if c.LLM.Model == "" {
		c.LLM.Model = d.LLM.Model
	}
	if c.Healing.MaxAttempts == 0 {
		c.Healing.MaxAttempts = d.Healing.MaxAttempts
	}
	if c.Healing.Framework == "" {
		c.Healing.Framework = d.Healing.Framework
	}
}
