package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "uismith", cfg.Name)
	assert.Equal(t, 3, cfg.Healing.MaxAttempts)
	assert.Equal(t, "react", cfg.Healing.Framework)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 6, cfg.Discovery.MaxDepth)
	assert.NotEmpty(t, cfg.Discovery.FilePatterns)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Healing.MaxAttempts, cfg.Healing.MaxAttempts)
}

func TestLoadPartialConfigBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
discovery:
  import_path: "@shopify/polaris"
  components:
    - AppCard
healing:
  max_attempts: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "@shopify/polaris", cfg.Discovery.ImportPath)
	assert.Equal(t, []string{"AppCard"}, cfg.Discovery.Components)
	assert.Equal(t, 5, cfg.Healing.MaxAttempts)

	// Unset sections keep their defaults.
	assert.Equal(t, 6, cfg.Discovery.MaxDepth)
	assert.Equal(t, "react", cfg.Healing.Framework)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discovery: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
