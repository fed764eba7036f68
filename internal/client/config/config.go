// Package config loads runtime settings for the book review CLI.
//
// Sources are applied in order, later ones winning:
// defaults -> .env file / environment -> JSON file (-c/-config) -> flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: origin of the review API, e.g. "http://127.0.0.1:8000".
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local sqlite file holding the session token.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "bookreview.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
