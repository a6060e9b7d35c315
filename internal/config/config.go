package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime configuration values.
type Config struct {
	Schedule          string        `mapstructure:"schedule"`
	RunOnce           bool          `mapstructure:"run_once"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	LogLevel          string        `mapstructure:"log_level"`
	SeedPath          string        `mapstructure:"seed_path"`
	DiscordWebhookURL string        `mapstructure:"discord_webhook_url"`
	MaxSections       int           `mapstructure:"max_sections"`
	MaxTitles         int           `mapstructure:"max_titles"`
	Feeds             []FeedConfig  `mapstructure:"feeds"`
	DevTo             []DevToConfig `mapstructure:"devto"`
}

// FeedConfig describes an RSS feed read as one magazine.
type FeedConfig struct {
	URL      string `mapstructure:"url"`
	Magazine string `mapstructure:"magazine"`
	Category string `mapstructure:"category"`
}

// DevToConfig describes a dev.to tag read as one magazine.
type DevToConfig struct {
	Tag      string `mapstructure:"tag"`
	Magazine string `mapstructure:"magazine"`
	PerPage  int    `mapstructure:"per_page"`
	Endpoint string `mapstructure:"endpoint"`
}

const (
	envPrefix          = "CATALOG"
	defaultSchedule    = "0 9 * * 1" // 09:00 every Monday
	defaultTimeout     = 30 * time.Second
	defaultLogLevel    = "info"
	defaultMaxSections = 25
	defaultMaxTitles   = 5
)

// Load reads configuration from an optional YAML file and the environment.
// Env var overrides use the prefix CATALOG_, e.g. CATALOG_SEED_PATH.
// CATALOG_CONFIG points at the config file; without it ./catalog.yaml is used if present.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("schedule", defaultSchedule)
	v.SetDefault("run_once", false)
	v.SetDefault("request_timeout", defaultTimeout)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("seed_path", "")
	v.SetDefault("discord_webhook_url", "")
	v.SetDefault("max_sections", defaultMaxSections)
	v.SetDefault("max_titles", defaultMaxTitles)

	v.SetConfigType("yaml")
	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("catalog")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.MaxSections <= 0 || cfg.MaxSections > defaultMaxSections {
		cfg.MaxSections = defaultMaxSections
	}

	if cfg.SeedPath == "" && len(cfg.Feeds) == 0 && len(cfg.DevTo) == 0 {
		return nil, fmt.Errorf("no catalog source configured: set CATALOG_SEED_PATH or list feeds/devto in the config file")
	}
	if !cfg.RunOnce && cfg.Schedule == "" {
		return nil, fmt.Errorf("CATALOG_SCHEDULE is required unless CATALOG_RUN_ONCE is set")
	}

	return &cfg, nil
}
