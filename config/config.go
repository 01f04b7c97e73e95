// Package config loads SDK configuration from the environment, with
// optional .env file support.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/asf-tools/hyp3-go/pkg/api/v1/client"
	"github.com/asf-tools/hyp3-go/pkg/api/v1/routes"
)

// Environment variable names
const (
	// EnvAPIURL overrides the API base URL
	EnvAPIURL = "HYP3_API_URL"
	// EnvToken supplies the bearer token attached to every request
	EnvToken = "HYP3_TOKEN"
	// EnvWatchInterval overrides the watch poll interval (a Go duration)
	EnvWatchInterval = "HYP3_WATCH_INTERVAL"
	// EnvWatchTimeout overrides the watch timeout (a Go duration)
	EnvWatchTimeout = "HYP3_WATCH_TIMEOUT"
)

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Config holds the environment-derived SDK configuration
type Config struct {
	APIURL        string
	Token         string
	WatchInterval time.Duration
	WatchTimeout  time.Duration
}

// Load reads configuration from a .env file, when present, and the
// environment. Missing optional values fall back to the SDK defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:        GetEnv(EnvAPIURL, routes.DefaultBaseURL),
		Token:         os.Getenv(EnvToken),
		WatchInterval: client.DefaultWatchInterval,
		WatchTimeout:  client.DefaultWatchTimeout,
	}

	if value := os.Getenv(EnvWatchInterval); value != "" {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvWatchInterval, err)
		}
		cfg.WatchInterval = interval
	}

	if value := os.Getenv(EnvWatchTimeout); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvWatchTimeout, err)
		}
		cfg.WatchTimeout = timeout
	}

	return cfg, nil
}

// ClientOptions converts the configuration into client options
func (c *Config) ClientOptions() *client.Options {
	return &client.Options{
		BaseURL: c.APIURL,
		Token:   c.Token,
	}
}

// WatchOptions converts the configuration into watch options
func (c *Config) WatchOptions() *client.WatchOptions {
	return &client.WatchOptions{
		Timeout:  c.WatchTimeout,
		Interval: c.WatchInterval,
	}
}
