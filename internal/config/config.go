// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultQueryTimeout      = 5 * time.Second
	defaultRecentLimit       = 10
	defaultTopRoomsLimit     = 10
	defaultTrendMonths       = 6
	defaultSnapshotRetention = 30 * 24 * time.Hour
	defaultRateLimitPerMin   = 60
)

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	Filename     string `yaml:"filename"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// ReportsConfig tunes the statistics endpoints and the snapshot job.
type ReportsConfig struct {
	QueryTimeout       time.Duration `yaml:"query_timeout"`
	RecentLimit        int           `yaml:"recent_limit"`
	TopRoomsLimit      int           `yaml:"top_rooms_limit"`
	TrendMonths        int           `yaml:"trend_months"`
	SnapshotCron       string        `yaml:"snapshot_cron"`
	SnapshotRetention  time.Duration `yaml:"snapshot_retention"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute"`
	TrustProxy         bool          `yaml:"trust_proxy"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		// Timezone names the calendar used for "today" and "this month".
		// Empty means the server's local zone.
		Timezone string `yaml:"timezone"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Reports ReportsConfig `yaml:"reports"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
		EnableDebug   bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Environment wins over the file for deploy-specific values.
	if filename := os.Getenv("DATABASE_FILENAME"); filename != "" {
		cfg.Database.Filename = filename
	}
	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		cfg.App.Timezone = tz
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML and fills report defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Reports.QueryTimeout <= 0 {
		c.Reports.QueryTimeout = defaultQueryTimeout
	}
	if c.Reports.RecentLimit <= 0 {
		c.Reports.RecentLimit = defaultRecentLimit
	}
	if c.Reports.TopRoomsLimit <= 0 {
		c.Reports.TopRoomsLimit = defaultTopRoomsLimit
	}
	if c.Reports.TrendMonths <= 0 {
		c.Reports.TrendMonths = defaultTrendMonths
	}
	if c.Reports.SnapshotRetention <= 0 {
		c.Reports.SnapshotRetention = defaultSnapshotRetention
	}
	if c.Reports.RateLimitPerMinute == 0 {
		c.Reports.RateLimitPerMinute = defaultRateLimitPerMin
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.App.Timezone != "" {
		if _, err := time.LoadLocation(c.App.Timezone); err != nil {
			return fmt.Errorf("invalid app timezone %q: %w", c.App.Timezone, err)
		}
	}

	if c.Reports.SnapshotCron != "" {
		if _, err := cron.ParseStandard(c.Reports.SnapshotCron); err != nil {
			return fmt.Errorf("invalid reports snapshot_cron %q: %w", c.Reports.SnapshotCron, err)
		}
	}
	if c.Reports.RateLimitPerMinute < 0 {
		return fmt.Errorf("reports rate_limit_per_minute must not be negative")
	}

	return nil
}

// Location returns the configured calendar zone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
