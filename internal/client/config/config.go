package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the community client.
//
// Units: RequestTimeout and OnlineCheckInterval are time.Duration values;
// zero RequestTimeout means the transport default, zero OnlineCheckInterval
// disables the connectivity watcher. CompressionQuality is a fraction in
// (0, 1].
type Config struct {
	BaseURL             string
	DBPath              string
	DefaultUserID       string
	Latitude            string
	Longitude           string
	MushroomID          string
	CompressionQuality  float64
	LibraryDir          string
	WorkDir             string
	KeepFeedOnError     bool
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
	SentryDSN           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://capcheck.onrender.com"
	c.DBPath = "community.db"
	c.DefaultUserID = "1"
	c.Latitude = "0"
	c.Longitude = "0"
	c.MushroomID = "1"
	c.CompressionQuality = 0.7
	c.LibraryDir = ""
	c.WorkDir = ""
	c.KeepFeedOnError = false
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.SentryDSN = ""
}

// Validate reports settings the client cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("base_url %q must be an absolute http(s) url", c.BaseURL))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if c.CompressionQuality <= 0 || c.CompressionQuality > 1 {
		errs = append(errs, fmt.Errorf("compression_quality %v must be in (0, 1]", c.CompressionQuality))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, errors.New("request_timeout must not be negative"))
	}
	if c.OnlineCheckInterval < 0 {
		errs = append(errs, errors.New("online_check_interval must not be negative"))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format %q must be console or json", c.LogFormat))
	}

	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON and environment (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
