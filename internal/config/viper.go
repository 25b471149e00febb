// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. LUZIA_PRICING_PRICE_PER_KWH.
const EnvPrefix = "LUZIA"

// Config represents the complete application configuration. Values are read
// once at startup and stay fixed for the lifetime of the process.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
		HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
		Delimiter   string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"storage" yaml:"storage"`

	Pricing struct {
		PricePerKWh   float64 `mapstructure:"price_per_kwh" yaml:"price_per_kwh"`
		MonthlyBudget float64 `mapstructure:"monthly_budget" yaml:"monthly_budget"`
		BaseCurrency  string  `mapstructure:"base_currency" yaml:"base_currency"`
		AltCurrency   string  `mapstructure:"alt_currency" yaml:"alt_currency"`
		ExchangeRate  float64 `mapstructure:"exchange_rate" yaml:"exchange_rate"`
	} `mapstructure:"pricing" yaml:"pricing"`

	Display struct {
		DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
	} `mapstructure:"display" yaml:"display"`
}

// InitializeConfig loads configuration with the precedence
// defaults < config file < LUZIA_* environment variables.
// configFile may be empty, in which case config.yaml is looked up in
// $HOME/.luzia, ./.luzia and the working directory.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.luzia")
		v.AddConfigPath(".luzia")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.data_dir", ".")
	v.SetDefault("storage.history_file", "luzia_history.csv")
	v.SetDefault("storage.delimiter", ",")

	v.SetDefault("pricing.price_per_kwh", 0.15)
	v.SetDefault("pricing.monthly_budget", 50.0)
	v.SetDefault("pricing.base_currency", "USD")
	v.SetDefault("pricing.alt_currency", "ARS")
	v.SetDefault("pricing.exchange_rate", 1000.0)

	v.SetDefault("display.default_currency", "USD")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.Storage.Delimiter)) != 1 {
		return fmt.Errorf("storage delimiter must be a single character, got: %q", config.Storage.Delimiter)
	}
	if d := config.Storage.Delimiter; d == "\"" || d == "\n" || d == "\r" {
		return fmt.Errorf("storage delimiter cannot be %q", d)
	}

	if strings.TrimSpace(config.Storage.HistoryFile) == "" {
		return fmt.Errorf("storage.history_file must not be empty")
	}

	if config.Pricing.PricePerKWh <= 0 {
		return fmt.Errorf("pricing.price_per_kwh must be positive, got: %v", config.Pricing.PricePerKWh)
	}
	if config.Pricing.MonthlyBudget < 0 {
		return fmt.Errorf("pricing.monthly_budget must not be negative, got: %v", config.Pricing.MonthlyBudget)
	}
	if config.Pricing.ExchangeRate <= 0 {
		return fmt.Errorf("pricing.exchange_rate must be positive, got: %v", config.Pricing.ExchangeRate)
	}

	base := strings.ToUpper(config.Pricing.BaseCurrency)
	alt := strings.ToUpper(config.Pricing.AltCurrency)
	if base == "" || alt == "" || base == alt {
		return fmt.Errorf("pricing currencies must be two distinct codes, got: %q and %q",
			config.Pricing.BaseCurrency, config.Pricing.AltCurrency)
	}

	def := strings.ToUpper(config.Display.DefaultCurrency)
	if def != base && def != alt {
		return fmt.Errorf("display.default_currency must be %s or %s, got: %s", base, alt, config.Display.DefaultCurrency)
	}

	return nil
}

// Validate checks c again, typically after command-line overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// HistoryPath returns the location of the history log.
func (c *Config) HistoryPath() string {
	if filepath.IsAbs(c.Storage.HistoryFile) {
		return c.Storage.HistoryFile
	}
	return filepath.Join(c.Storage.DataDir, c.Storage.HistoryFile)
}

// DelimiterRune returns the history log column separator.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Storage.Delimiter)[0]
}

// PricePerKWh returns the configured price in the base currency.
func (c *Config) PricePerKWh() decimal.Decimal {
	return decimal.NewFromFloat(c.Pricing.PricePerKWh)
}

// MonthlyBudget returns the configured budget in the base currency.
func (c *Config) MonthlyBudget() decimal.Decimal {
	return decimal.NewFromFloat(c.Pricing.MonthlyBudget)
}

// ExchangeRate returns the base-to-alternate currency multiplier.
func (c *Config) ExchangeRate() decimal.Decimal {
	return decimal.NewFromFloat(c.Pricing.ExchangeRate)
}
