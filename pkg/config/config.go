package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedloop.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
}

// ScheduleConfig holds periodic job settings. The scheduler is opt-in:
// with Enabled false nothing runs on a timer and only manual triggers work.
type ScheduleConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable periodic fetch and cleanup jobs"`
	FetchInterval time.Duration `yaml:"fetch_interval" json:"fetch_interval" jsonschema:"default=1h,description=Interval between full fetch runs"`
	CleanupTime   string        `yaml:"cleanup_time" json:"cleanup_time" jsonschema:"default=03:30,description=Time of day (HH:MM) for the daily cleanup job"`
	Timezone      string        `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=Timezone for the cleanup schedule"`
	RetentionDays int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,description=Articles older than this many days are pruned"`
	MaxPerFeed    int           `yaml:"max_per_feed" json:"max_per_feed" jsonschema:"default=500,description=Per-feed article cap enforced by cleanup"`
	Concurrency   int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=1,description=Number of feeds fetched in parallel during a run"`
}

// FetchConfig holds per-request settings for feed fetching
type FetchConfig struct {
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Timeout per HTTP request"`
	UserAgent       string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=feedloop/1.0,description=User agent for the primary fetch strategy"`
	UserAgents      []string      `yaml:"user_agents" json:"user_agents" jsonschema:"description=Ordered user agent rotation list for the fallback strategy"`
	RefererHosts    []string      `yaml:"referer_hosts" json:"referer_hosts" jsonschema:"description=Host substrings that get a Referer header on fallback requests"`
	TransientErrors []string      `yaml:"transient_errors" json:"transient_errors" jsonschema:"description=Error signatures treated as transient during feed validation"`
}

// DefaultUserAgents is the fallback rotation order: common desktop browsers
// first, then the declared bot identity, then a well-known crawler
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"feedloop/1.0 (+https://github.com/feedloop/feedloop)",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
}

// DefaultRefererHosts lists host substrings known to reject requests
// without a Referer header
var DefaultRefererHosts = []string{"politico", "bbc"}

// DefaultTransientErrors are failure signatures that should not permanently
// reject a feed at registration time: anti-bot HTTP codes in both legacy and
// modern phrasing, network trouble, and malformed-XML noise
var DefaultTransientErrors = []string{
	"403", "Forbidden",
	"429", "Too Many Requests",
	"503", "Service Unavailable",
	"no such host",
	"connection refused",
	"connection reset",
	"timeout",
	"deadline exceeded",
	"EOF",
	"unexpected end",
	"XML syntax error",
	"Failed to detect feed type",
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse loads configuration from raw YAML with env expansion and defaulting
func Parse(data []byte) (*Config, error) {
	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedloop.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Schedule.FetchInterval == 0 {
		c.Schedule.FetchInterval = time.Hour
	}
	if c.Schedule.CleanupTime == "" {
		c.Schedule.CleanupTime = "03:30"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "UTC"
	}
	if c.Schedule.RetentionDays == 0 {
		c.Schedule.RetentionDays = 30
	}
	if c.Schedule.MaxPerFeed == 0 {
		c.Schedule.MaxPerFeed = 500
	}
	if c.Schedule.Concurrency == 0 {
		c.Schedule.Concurrency = 1
	}

	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "feedloop/1.0 (+https://github.com/feedloop/feedloop)"
	}
	if len(c.Fetch.UserAgents) == 0 {
		c.Fetch.UserAgents = DefaultUserAgents
	}
	if len(c.Fetch.RefererHosts) == 0 {
		c.Fetch.RefererHosts = DefaultRefererHosts
	}
	if len(c.Fetch.TransientErrors) == 0 {
		c.Fetch.TransientErrors = DefaultTransientErrors
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch.timeout must be at least 1 second")
	}

	if cfg.Schedule.FetchInterval < time.Minute {
		return fmt.Errorf("schedule.fetch_interval must be at least 1 minute")
	}
	if cfg.Schedule.RetentionDays < 1 {
		return fmt.Errorf("schedule.retention_days must be at least 1")
	}
	if cfg.Schedule.MaxPerFeed < 1 {
		return fmt.Errorf("schedule.max_per_feed must be at least 1")
	}
	if cfg.Schedule.Concurrency < 1 {
		return fmt.Errorf("schedule.concurrency must be at least 1")
	}

	if _, err := ParseTimeOfDay(cfg.Schedule.CleanupTime); err != nil {
		return fmt.Errorf("schedule.cleanup_time: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetScheduleConfig returns scheduler configuration
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}

// GetFetchConfig returns feed fetching configuration
func (c *Config) GetFetchConfig() FetchConfig {
	return c.Fetch
}

// ParseTimeOfDay parses an "HH:MM" string into hour and minute
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &tod.Hour, &tod.Minute); err != nil {
		return tod, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
		return tod, fmt.Errorf("invalid time of day %q", s)
	}
	return tod, nil
}

// TimeOfDay is a wall-clock time within a day
type TimeOfDay struct {
	Hour   int
	Minute int
}
