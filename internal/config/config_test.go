package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Feed.Source != "synthetic" {
		t.Errorf("default feed source = %q, want synthetic", cfg.Feed.Source)
	}
	if cfg.Chart.WindowMs != 60_000 || cfg.Chart.BucketMs != 2_000 {
		t.Errorf("default window/bucket = %d/%d", cfg.Chart.WindowMs, cfg.Chart.BucketMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("feed:\n  source: binance\n  symbol: ethusdt\nchart:\n  theme: light\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHARTPULSE_SYMBOL", "solusdt")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Feed.Source != "binance" {
		t.Errorf("feed source = %q, want binance", cfg.Feed.Source)
	}
	if cfg.Feed.Symbol != "solusdt" {
		t.Errorf("env override lost: symbol = %q", cfg.Feed.Symbol)
	}
	if cfg.Chart.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.Chart.Theme)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Feed.Source = "replay"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown feed source should fail validation")
	}
	cfg.Feed.Source = "synthetic"

	cfg.Chart.BucketMs = cfg.Chart.WindowMs + 1
	if err := cfg.Validate(); err == nil {
		t.Error("bucket wider than window should fail validation")
	}
}
