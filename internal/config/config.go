package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Feed struct {
		Source string `yaml:"source"` // "synthetic" or "binance"
		Symbol string `yaml:"symbol"`
		URL    string `yaml:"url"`
	} `yaml:"feed"`
	Chart struct {
		Theme    string `yaml:"theme"`
		WindowMs int64  `yaml:"window_ms"`
		BucketMs int64  `yaml:"bucket_ms"`
		Grid     bool   `yaml:"grid"`
		Pulse    bool   `yaml:"pulse"`
		Volume   bool   `yaml:"volume"`
		Depth    bool   `yaml:"depth"`
	} `yaml:"chart"`
	Recorder struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"recorder"`
	Report struct {
		StatsCron string `yaml:"stats_cron"`
	} `yaml:"report"`
	ThemeFile string `yaml:"theme_file"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CHARTPULSE_FEED"); v != "" {
		cfg.Feed.Source = v
	}
	if v := os.Getenv("CHARTPULSE_SYMBOL"); v != "" {
		cfg.Feed.Symbol = v
	}
	if v := os.Getenv("CHARTPULSE_FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("CHARTPULSE_THEME"); v != "" {
		cfg.Chart.Theme = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Recorder.SQLitePath = v
	}
	if v := os.Getenv("CRON_STATS"); v != "" {
		cfg.Report.StatsCron = v
	}

	// Defaults
	if cfg.Feed.Source == "" {
		cfg.Feed.Source = "synthetic"
	}
	if cfg.Feed.Symbol == "" {
		cfg.Feed.Symbol = "btcusdt"
	}
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = "wss://stream.binance.com:9443/ws"
	}
	if cfg.Chart.Theme == "" {
		cfg.Chart.Theme = "dark"
	}
	if cfg.Chart.WindowMs == 0 {
		cfg.Chart.WindowMs = 60_000
	}
	if cfg.Chart.BucketMs == 0 {
		cfg.Chart.BucketMs = 2_000
	}
	if cfg.Report.StatsCron == "" {
		cfg.Report.StatsCron = "0 * * * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Feed.Source {
	case "synthetic", "binance":
	default:
		return fmt.Errorf("feed.source must be synthetic or binance, got %q", c.Feed.Source)
	}
	if c.Feed.Source == "binance" && c.Feed.Symbol == "" {
		return fmt.Errorf("feed.symbol is required for the binance feed")
	}
	if c.Chart.WindowMs <= 0 {
		return fmt.Errorf("chart.window_ms must be positive")
	}
	if c.Chart.BucketMs <= 0 || c.Chart.BucketMs > c.Chart.WindowMs {
		return fmt.Errorf("chart.bucket_ms must be positive and at most chart.window_ms")
	}
	return nil
}
