package config

// HealingConfig configures the self-healing retry loop.
type HealingConfig struct {
	// MaxAttempts bounds the number of generate calls per request.
	MaxAttempts int `yaml:"max_attempts"`

	// Framework selects the symbol-extraction and prompt dialect:
	// "react", "vue", or "web-components".
	Framework string `yaml:"framework"`
}

// DefaultHealingConfig returns healing defaults.
func DefaultHealingConfig() HealingConfig {
	return HealingConfig{
		MaxAttempts: 3,
		Framework:   "react",
	}
}
