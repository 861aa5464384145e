package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
ui:
  mode: plain
  color: false

log:
  dir: "/tmp/counter-logs"
  max_size_mb: 5
  level: debug

sound:
  enabled: true
  dir: "sounds"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ModePlain, cfg.UI.Mode)
	assert.False(t, cfg.UI.ColorEnabled())
	assert.Equal(t, "/tmp/counter-logs", cfg.Log.Dir)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	assert.Equal(t, int64(5*1024*1024), cfg.Log.MaxSizeBytes())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, "sounds", cfg.Sound.Dir)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultMode, cfg.UI.Mode)
	assert.True(t, cfg.UI.ColorEnabled())
	assert.Equal(t, defaultMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, defaultLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, defaultSoundDir, cfg.Sound.Dir)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown mode", "ui:\n  mode: gui\n"},
		{"unknown level", "log:\n  level: trace\n"},
		{"negative size", "log:\n  max_size_mb: -1\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDefault(t *testing.T) {
	// Note: Not parallel because Default() reads environment variables

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, defaultMode, cfg.UI.Mode)
	assert.Equal(t, defaultLevel, cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestDefault_InvalidEnvFallsBack(t *testing.T) {
	// Not parallel because it modifies environment variables

	t.Setenv("COUNTER_UI_MODE", "gui")
	t.Setenv("COUNTER_LOG_LEVEL", "trace")
	t.Setenv("COUNTER_LOG_DIR", "/tmp/counter-logs")

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultMode, cfg.UI.Mode)
	assert.Equal(t, defaultLevel, cfg.Log.Level)
	assert.Equal(t, "/tmp/counter-logs", cfg.Log.Dir, "valid env values are kept")

	t.Setenv("COUNTER_UI_MODE", "plain")
	t.Setenv("COUNTER_LOG_LEVEL", "debug")
	cfg = Default()
	assert.Equal(t, ModePlain, cfg.UI.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies environment variables

	t.Setenv("COUNTER_UI_MODE", "plain")
	t.Setenv("COUNTER_LOG_DIR", "/var/log/counter")
	t.Setenv("COUNTER_LOG_LEVEL", "warn")
	t.Setenv("COUNTER_SOUND_ENABLED", "true")

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ModePlain, cfg.UI.Mode)
	assert.Equal(t, "/var/log/counter", cfg.Log.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Sound.Enabled)
}

func TestLoadFromEnv_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("COUNTER_SOUND_ENABLED", "maybe")

	cfg, err := Load(writeConfig(t, "sound:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Sound.Enabled)
}
