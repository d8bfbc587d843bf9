// Package common provides shared configuration and logging for zenith.
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for zenith.
type Config struct {
	DataDir  string        `toml:"data_dir"`
	Currency string        `toml:"currency"`
	Market   MarketConfig  `toml:"market"`
	Assist   AssistConfig  `toml:"assist"`
	Logging  LoggingConfig `toml:"logging"`
	Alerts   NotifyConfig  `toml:"alerts"`
}

// MarketConfig holds the quote feed configuration.
type MarketConfig struct {
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
	CacheTTL string `toml:"cache_ttl"`
}

// GetCacheTTL parses and returns the quote cache lifetime.
func (c *MarketConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

// AssistConfig holds the AI drafting configuration.
type AssistConfig struct {
	Model string `toml:"model"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NotifyConfig holds invoice alert configuration.
type NotifyConfig struct {
	InvoiceWindowDays int `toml:"invoice_window_days"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir:  ".",
		Currency: "USD",
		Market: MarketConfig{
			BaseURL:  "https://eodhd.com/api",
			CacheTTL: "15m",
		},
		Assist: AssistConfig{
			Model: "gemini-2.0-flash",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Alerts: NotifyConfig{
			InvoiceWindowDays: 7,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped. A .env file
// in the working directory is loaded first so both the config file and the
// overrides can reference it.
func LoadConfig(paths ...string) (*Config, error) {
	// A missing .env is fine, the OS environment still applies.
	_ = godotenv.Load()

	config := NewDefaultConfig()
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	config.Currency = strings.ToUpper(config.Currency)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if dir := os.Getenv("ZENITH_DATA_DIR"); dir != "" {
		config.DataDir = dir
	}
	if cur := os.Getenv("ZENITH_CURRENCY"); cur != "" {
		config.Currency = cur
	}
	if level := os.Getenv("ZENITH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if url := os.Getenv("ZENITH_MARKET_URL"); url != "" {
		config.Market.BaseURL = url
	}
	if key := os.Getenv("ZENITH_MARKET_API_KEY"); key != "" {
		config.Market.APIKey = key
	}
	if model := os.Getenv("ZENITH_ASSIST_MODEL"); model != "" {
		config.Assist.Model = model
	}
	if days := os.Getenv("ZENITH_INVOICE_WINDOW_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil {
			config.Alerts.InvoiceWindowDays = d
		}
	}
}

// StatePath returns the path of the persisted ledger document.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "zenith.json")
}
