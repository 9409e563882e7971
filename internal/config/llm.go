package config

// LLMConfig configures the LLM generator client.
type LLMConfig struct {
	Provider string `yaml:"provider"` // genai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// DefaultLLMConfig returns LLM defaults. The API key is always taken from
// the environment, never written to config files.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider: "genai",
		Model:    "gemini-2.0-flash",
		Timeout:  "120s",
	}
}
