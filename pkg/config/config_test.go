package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars clears all keep-agent environment variables.
func clearEnvVars() {
	envVars := []string{
		"APP_ENV", "LOG_LEVEL",
		"KEEP_DATA_PATH", "KEEP_OUTPUT_PATH", "KEEP_CHUNK_SIZE",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "OPENAI_TIMEOUT",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_TIMEOUT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, "keep_data/", cfg.KeepDataPath)
	assert.Equal(t, "output/keep_analysis.json", cfg.OutputPath)
	assert.Equal(t, 30, cfg.ChunkSize)

	assert.Equal(t, "", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 60*time.Second, cfg.OpenAITimeout)

	assert.Equal(t, 10*time.Second, cfg.TelegramTimeout)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_WithCustomEnvVars(t *testing.T) {
	clearEnvVars()
	defer clearEnvVars()

	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("KEEP_DATA_PATH", "/exports/keep.json")
	os.Setenv("KEEP_CHUNK_SIZE", "10")
	os.Setenv("OPENAI_MODEL", "gpt-4o")
	os.Setenv("OPENAI_TIMEOUT", "90s")
	os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	os.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/exports/keep.json", cfg.KeepDataPath)
	assert.Equal(t, 10, cfg.ChunkSize)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 90*time.Second, cfg.OpenAITimeout)
	assert.True(t, cfg.TelegramEnabled())
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		appEnv   string
		expected bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
		{"test", false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		appEnv   string
		expected bool
	}{
		{"development", false},
		{"production", true},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.appEnv, func(t *testing.T) {
			cfg := &Config{AppEnv: tt.appEnv}
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

func TestConfig_TelegramEnabled(t *testing.T) {
	assert.False(t, (&Config{TelegramBotToken: "t"}).TelegramEnabled())
	assert.False(t, (&Config{TelegramChatID: "c"}).TelegramEnabled())
	assert.True(t, (&Config{TelegramBotToken: "t", TelegramChatID: "c"}).TelegramEnabled())
}

func TestGetEnv(t *testing.T) {
	// Test default value
	value := getEnv("NON_EXISTENT_VAR", "default")
	assert.Equal(t, "default", value)

	// Test with set value
	os.Setenv("TEST_VAR", "custom")
	defer os.Unsetenv("TEST_VAR")
	value = getEnv("TEST_VAR", "default")
	assert.Equal(t, "custom", value)

	// Test with empty string (should use default)
	os.Setenv("TEST_EMPTY", "")
	defer os.Unsetenv("TEST_EMPTY")
	value = getEnv("TEST_EMPTY", "default")
	assert.Equal(t, "default", value)
}

func TestGetIntEnv(t *testing.T) {
	// Test default value
	value := getIntEnv("NON_EXISTENT_INT", 42)
	assert.Equal(t, 42, value)

	// Test with valid int
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")
	value = getIntEnv("TEST_INT", 42)
	assert.Equal(t, 100, value)

	// Test with invalid int (should use default)
	os.Setenv("TEST_INVALID_INT", "not-a-number")
	defer os.Unsetenv("TEST_INVALID_INT")
	value = getIntEnv("TEST_INVALID_INT", 42)
	assert.Equal(t, 42, value)
}

func TestGetDurationEnv(t *testing.T) {
	// Test default value
	value := getDurationEnv("NON_EXISTENT_DUR", 5*time.Second)
	assert.Equal(t, 5*time.Second, value)

	// Test with valid duration
	os.Setenv("TEST_DUR", "10m")
	defer os.Unsetenv("TEST_DUR")
	value = getDurationEnv("TEST_DUR", 5*time.Second)
	assert.Equal(t, 10*time.Minute, value)

	// Test with invalid duration (should use default)
	os.Setenv("TEST_INVALID_DUR", "not-a-duration")
	defer os.Unsetenv("TEST_INVALID_DUR")
	value = getDurationEnv("TEST_INVALID_DUR", 5*time.Second)
	assert.Equal(t, 5*time.Second, value)
}
