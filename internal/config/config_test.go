package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fioapi/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"FIO_API_TOKEN", "FIO_BASE_URL", "FIO_TIMEOUT", "LOG_LEVEL", "MOCK_TOKENS", "MOCK_MAX_ITEMS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Client.Timeout)
	assert.Empty(t, cfg.Client.Token)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "sqlite", cfg.MockServer.DBDriver)
	assert.Equal(t, 50000, cfg.MockServer.MaxItems)
	assert.Nil(t, cfg.MockServer.Tokens)
	assert.Equal(t, "localhost:8081", cfg.MockServer.Address())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	token := strings.Repeat("x", 64)
	t.Setenv("FIO_API_TOKEN", " "+token+"\n")
	t.Setenv("FIO_BASE_URL", "http://localhost:9000/v1/rest")
	t.Setenv("FIO_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MOCK_TOKENS", token+", "+strings.Repeat("y", 64)+",")
	t.Setenv("MOCK_MAX_ITEMS", "not a number")

	cfg := Load()

	assert.Equal(t, token, cfg.Client.Token)
	assert.Equal(t, "http://localhost:9000/v1/rest", cfg.Client.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Len(t, cfg.MockServer.Tokens, 2)
	assert.Equal(t, 50000, cfg.MockServer.MaxItems)
	assert.NoError(t, cfg.Validate())
	assert.NotContains(t, cfg.Client.String(), token)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FIO_MIN_REQUEST_INTERVAL", "")
	require.NoError(t, os.Unsetenv("FIO_MIN_REQUEST_INTERVAL"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FIO_MIN_REQUEST_INTERVAL=30s\n"), 0o600))

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.Client.MinRequestInterval)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short token", func(c *Config) { c.Client.Token = "abc" }},
		{"bad base url", func(c *Config) { c.Client.BaseURL = "not a url" }},
		{"zero timeout", func(c *Config) { c.Client.Timeout = 0 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown driver", func(c *Config) { c.MockServer.DBDriver = "mysql" }},
		{"bad mock token", func(c *Config) { c.MockServer.Tokens = []string{"short"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ConfigInvalid, appErr.Code)
		})
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := LogConfig{Level: "warn", Format: "json"}
	logger := cfg.NewLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"k":"v"`)
}

func validConfig() *Config {
	return &Config{
		Client: ClientConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Log: LogConfig{Level: "info", Format: "text"},
		MockServer: MockServerConfig{
			Host:     "localhost",
			Port:     "8081",
			DBDriver: "sqlite",
			MaxItems: 10,
		},
	}
}

func TestValidateClient(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := Load()
	cfg.MockServer.DBDriver = "mysql"
	assert.NoError(t, cfg.ValidateClient(), "mock server settings are not checked")

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad base url", func(c *Config) { c.Client.BaseURL = "::not a url" }},
		{"zero timeout", func(c *Config) { c.Client.Timeout = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.ValidateClient()
			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ConfigInvalid, appErr.Code)
		})
	}
}
