package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.aviationstack.com/v1", cfg.API.BaseURL)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.InDelta(t, 1.0, cfg.API.RequestsPerSecond, 0.001)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Output.Colors)
	assert.Equal(t, "./data/airlines.csv", cfg.Data.AirlinesFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DELAYSPOTTR_API_MAX_RETRIES", "5")
	t.Setenv("DELAYSPOTTR_LOGGING_LEVEL", "debug")
	t.Setenv("AVIATIONSTACK_ACCESS_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.API.MaxRetries)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "env-key", cfg.API.AccessKey)
}

func TestLoadPrefixedKeyWinsOverUpstreamName(t *testing.T) {
	t.Setenv("AVIATIONSTACK_ACCESS_KEY", "upstream-key")
	t.Setenv("DELAYSPOTTR_API_ACCESS_KEY", "prefixed-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prefixed-key", cfg.API.AccessKey)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
api:
  access_key: file-key
  max_retries: 7
logging:
  level: warn
output:
  colors: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.API.AccessKey)
	assert.Equal(t, 7, cfg.API.MaxRetries)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Output.Colors)
	// Values the file does not set keep their defaults.
	assert.Equal(t, "https://api.aviationstack.com/v1", cfg.API.BaseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero retries", key: "DELAYSPOTTR_API_MAX_RETRIES", value: "0"},
		{name: "zero timeout", key: "DELAYSPOTTR_API_TIMEOUT_SECONDS", value: "0"},
		{name: "negative rate", key: "DELAYSPOTTR_API_REQUESTS_PER_SECOND", value: "-1"},
		{name: "bogus log level", key: "DELAYSPOTTR_LOGGING_LEVEL", value: "loud"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
