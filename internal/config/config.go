package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "fioapi/internal/errors"
	"fioapi/internal/validation"
)

const (
	// DefaultBaseURL is the production endpoint of the bank API
	DefaultBaseURL = "https://fioapi.fio.cz/v1/rest"
	// DefaultTimeout bounds a whole request including reading the body
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	Client     ClientConfig
	Log        LogConfig
	MockServer MockServerConfig
}

type ClientConfig struct {
	Token              string        `validate:"omitempty,fio_token"`
	BaseURL            string        `validate:"required,url"`
	Timeout            time.Duration `validate:"gt=0"`
	MinRequestInterval time.Duration `validate:"gte=0"`
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
}

type MockServerConfig struct {
	Host              string `validate:"required"`
	Port              string `validate:"required,numeric"`
	DBDriver          string `validate:"oneof=sqlite postgres"`
	DBDSN             string
	RateLimitInterval time.Duration `validate:"gte=0"`
	MaxItems          int           `validate:"gt=0"`
	Tokens            []string      `validate:"dive,fio_token"`
	SeedDays          int           `validate:"gte=0"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; variables already set win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Client: ClientConfig{
			Token:              strings.TrimSpace(os.Getenv("FIO_API_TOKEN")),
			BaseURL:            getEnv("FIO_BASE_URL", DefaultBaseURL),
			Timeout:            getDurationEnv("FIO_TIMEOUT", DefaultTimeout),
			MinRequestInterval: getDurationEnv("FIO_MIN_REQUEST_INTERVAL", 0),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		MockServer: MockServerConfig{
			Host:              getEnv("MOCK_HOST", "localhost"),
			Port:              getEnv("MOCK_PORT", "8081"),
			DBDriver:          getEnv("MOCK_DB_DRIVER", "sqlite"),
			DBDSN:             getEnv("MOCK_DB_DSN", "file::memory:?cache=shared"),
			RateLimitInterval: getDurationEnv("MOCK_RATE_LIMIT_INTERVAL", 30*time.Second),
			MaxItems:          getIntEnv("MOCK_MAX_ITEMS", 50000),
			Tokens:            getListEnv("MOCK_TOKENS"),
			SeedDays:          getIntEnv("MOCK_SEED_DAYS", 90),
		},
	}
}

// Validate checks every section and reports the first invalid field
func (c *Config) Validate() error {
	if err := validation.GetValidator().GetValidate().Struct(c); err != nil {
		return apperrors.New(apperrors.ConfigInvalid, apperrors.WithCause(err))
	}
	return nil
}

// ValidateClient checks only the sections the API client uses, so a
// command line run is not blocked by mock server settings
func (c *Config) ValidateClient() error {
	v := validation.GetValidator().GetValidate()
	for _, section := range []any{&c.Client, &c.Log} {
		if err := v.Struct(section); err != nil {
			return apperrors.New(apperrors.ConfigInvalid, apperrors.WithCause(err))
		}
	}
	return nil
}

// Address is the listen address of the mock server
func (c *MockServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// SlogLevel converts the configured level name, defaulting to info
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w in the configured format
func (c *LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *ClientConfig) String() string {
	token := "<unset>"
	if c.Token != "" {
		token = "<token>"
	}
	return fmt.Sprintf("base_url=%s timeout=%s token=%s", c.BaseURL, c.Timeout, token)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
