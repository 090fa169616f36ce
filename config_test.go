package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"LISTEN_ADDR", "LOG_LEVEL", "LOG_PRETTY", "OUTPUT_FORMAT", "PROMPT"}

// clearEnv unsets the config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)

	c, err := NewConfigFromEnv(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, ":1200", c.LISTEN_ADDR)
	assert.Equal(t, zerolog.InfoLevel, c.Level())
	assert.False(t, c.LOG_PRETTY)
	assert.Equal(t, OUTPUT_TEXT, c.OUTPUT_FORMAT)
	assert.Equal(t, "Enter Base64 URL string: ", c.PROMPT)
}

func TestConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("OUTPUT_FORMAT", "json")

	c, err := NewConfigFromEnv(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", c.LISTEN_ADDR)
	assert.Equal(t, zerolog.DebugLevel, c.Level())
	assert.True(t, c.LOG_PRETTY)
	assert.Equal(t, OUTPUT_JSON, c.OUTPUT_FORMAT)
}

func TestConfigFromEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9000")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OUTPUT_FORMAT=json\nLISTEN_ADDR=:7000\n"), 0o600))

	c, err := NewConfigFromEnv(path)

	require.NoError(t, err)
	assert.Equal(t, OUTPUT_JSON, c.OUTPUT_FORMAT)
	assert.Equal(t, ":9000", c.LISTEN_ADDR, "process environment wins over .env")
}

func TestConfigRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("OUTPUT_FORMAT", "yaml")
	_, err := NewConfigFromEnv(missingEnvFile(t))
	assert.Error(t, err)

	t.Setenv("OUTPUT_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = NewConfigFromEnv(missingEnvFile(t))
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "maybe")
	_, err = NewConfigFromEnv(missingEnvFile(t))
	assert.Error(t, err)
}
