package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ".", config.Storage.DataDir)
	assert.Equal(t, "luzia_history.csv", config.Storage.HistoryFile)
	assert.Equal(t, ',', config.DelimiterRune())
	assert.Equal(t, "USD", config.Pricing.BaseCurrency)
	assert.Equal(t, "ARS", config.Pricing.AltCurrency)
	assert.Equal(t, "USD", config.Display.DefaultCurrency)

	assert.True(t, config.PricePerKWh().Equal(decimal.RequireFromString("0.15")))
	assert.True(t, config.MonthlyBudget().Equal(decimal.NewFromInt(50)))
	assert.True(t, config.ExchangeRate().Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "luzia_history.csv", config.HistoryPath())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("LUZIA_LOG_LEVEL", "debug")
	t.Setenv("LUZIA_LOG_FORMAT", "json")
	t.Setenv("LUZIA_STORAGE_DATA_DIR", "/var/lib/luzia")
	t.Setenv("LUZIA_STORAGE_DELIMITER", ";")
	t.Setenv("LUZIA_PRICING_PRICE_PER_KWH", "0.2")
	t.Setenv("LUZIA_PRICING_EXCHANGE_RATE", "950")
	t.Setenv("LUZIA_DISPLAY_DEFAULT_CURRENCY", "ARS")

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ';', config.DelimiterRune())
	assert.Equal(t, filepath.Join("/var/lib/luzia", "luzia_history.csv"), config.HistoryPath())
	assert.True(t, config.PricePerKWh().Equal(decimal.RequireFromString("0.2")))
	assert.True(t, config.ExchangeRate().Equal(decimal.NewFromInt(950)))
	assert.Equal(t, "ARS", config.Display.DefaultCurrency)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "luzia.yaml")
	content := `
log:
  level: warn
storage:
  history_file: /tmp/consumo.csv
pricing:
  price_per_kwh: 0.12
  monthly_budget: 40
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))

	config, err := InitializeConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "/tmp/consumo.csv", config.HistoryPath())
	assert.True(t, config.PricePerKWh().Equal(decimal.RequireFromString("0.12")))
	assert.True(t, config.MonthlyBudget().Equal(decimal.NewFromInt(40)))
	// untouched keys keep their defaults
	assert.Equal(t, "ARS", config.Pricing.AltCurrency)
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	clearTestEnvVars(t)

	configFile := filepath.Join(t.TempDir(), "luzia.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("pricing:\n  monthly_budget: 40\n"), 0600))
	t.Setenv("LUZIA_PRICING_MONTHLY_BUDGET", "75")

	config, err := InitializeConfig(configFile)
	require.NoError(t, err)
	assert.True(t, config.MonthlyBudget().Equal(decimal.NewFromInt(75)))
}

func TestInitializeConfig_MissingExplicitFile(t *testing.T) {
	clearTestEnvVars(t)

	_, err := InitializeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"delimiter length", func(c *Config) { c.Storage.Delimiter = ";;" }, "single character"},
		{"delimiter quote", func(c *Config) { c.Storage.Delimiter = "\"" }, "cannot be"},
		{"empty history file", func(c *Config) { c.Storage.HistoryFile = " " }, "history_file"},
		{"zero price", func(c *Config) { c.Pricing.PricePerKWh = 0 }, "price_per_kwh"},
		{"negative budget", func(c *Config) { c.Pricing.MonthlyBudget = -1 }, "monthly_budget"},
		{"zero exchange rate", func(c *Config) { c.Pricing.ExchangeRate = 0 }, "exchange_rate"},
		{"same currencies", func(c *Config) { c.Pricing.AltCurrency = "usd" }, "distinct"},
		{"unknown default currency", func(c *Config) { c.Display.DefaultCurrency = "EUR" }, "default_currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.mutate(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestHistoryPath_Absolute(t *testing.T) {
	config := validTestConfig()
	config.Storage.DataDir = "/data"
	config.Storage.HistoryFile = "/elsewhere/h.csv"
	assert.Equal(t, "/elsewhere/h.csv", config.HistoryPath())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LUZIA_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("LUZIA_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("LUZIA_TEST_UNSET_VALUE", "fallback"))
}

func validTestConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Storage.DataDir = "."
	config.Storage.HistoryFile = "luzia_history.csv"
	config.Storage.Delimiter = ","
	config.Pricing.PricePerKWh = 0.15
	config.Pricing.MonthlyBudget = 50
	config.Pricing.BaseCurrency = "USD"
	config.Pricing.AltCurrency = "ARS"
	config.Pricing.ExchangeRate = 1000
	config.Display.DefaultCurrency = "USD"
	return config
}

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LUZIA_LOG_LEVEL",
		"LUZIA_LOG_FORMAT",
		"LUZIA_STORAGE_DATA_DIR",
		"LUZIA_STORAGE_HISTORY_FILE",
		"LUZIA_STORAGE_DELIMITER",
		"LUZIA_PRICING_PRICE_PER_KWH",
		"LUZIA_PRICING_MONTHLY_BUDGET",
		"LUZIA_PRICING_BASE_CURRENCY",
		"LUZIA_PRICING_ALT_CURRENCY",
		"LUZIA_PRICING_EXCHANGE_RATE",
		"LUZIA_DISPLAY_DEFAULT_CURRENCY",
	} {
		// t.Setenv registers cleanup that restores the original value
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
