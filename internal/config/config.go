package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables and an optional .env file.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIBaseURL            string        `mapstructure:"api_base_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	SnapshotType       string        `mapstructure:"snapshot_type"`
	SnapshotPath       string        `mapstructure:"snapshot_path"`
	SnapshotTTLSeconds int64         `mapstructure:"snapshot_ttl_seconds"`
	SnapshotTTL        time.Duration `mapstructure:"-"`

	Output string `mapstructure:"output"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app_name", "digidrobe")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "http://localhost:5001/api")
	v.SetDefault("request_timeout_seconds", 15)
	v.SetDefault("snapshot_type", "bbolt")
	v.SetDefault("snapshot_path", "./data/snapshot.db")
	v.SetDefault("snapshot_ttl_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("output", "json")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	parsed, err := url.Parse(cfg.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid api_base_url %q (must be an absolute URL)", cfg.APIBaseURL)
	}

	if cfg.RequestTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must not be negative)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.SnapshotTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid snapshot_ttl_seconds (must be positive seconds)")
	}
	cfg.SnapshotTTL = time.Duration(cfg.SnapshotTTLSeconds) * time.Second

	switch cfg.Output {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output %q (must be json or yaml)", cfg.Output)
	}

	return &cfg, nil
}
