package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("currency = %q, want USD", cfg.Currency)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Market.GetCacheTTL() != 15*time.Minute {
		t.Errorf("cache ttl = %v, want 15m", cfg.Market.GetCacheTTL())
	}
	if cfg.Alerts.InvoiceWindowDays != 7 {
		t.Errorf("invoice window = %d, want 7", cfg.Alerts.InvoiceWindowDays)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zenith.toml")
	doc := `
currency = "brl"
data_dir = "/var/lib/zenith"

[market]
cache_ttl = "1h"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Currency != "BRL" {
		t.Errorf("currency = %q, want BRL (uppercased)", cfg.Currency)
	}
	if cfg.Market.GetCacheTTL() != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", cfg.Market.GetCacheTTL())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if got := cfg.StatePath(); got != filepath.Join("/var/lib/zenith", "zenith.json") {
		t.Errorf("state path = %q", got)
	}
}

func TestLoadConfigMissingFileIsSkipped(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Errorf("missing config file should be skipped, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ZENITH_CURRENCY", "eur")
	t.Setenv("ZENITH_LOG_LEVEL", "warn")
	t.Setenv("ZENITH_INVOICE_WINDOW_DAYS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", cfg.Currency)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Alerts.InvoiceWindowDays != 3 {
		t.Errorf("invoice window = %d, want 3", cfg.Alerts.InvoiceWindowDays)
	}
}
