package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a local .env file first when one exists. A missing .env file
// is not an error.
//
// Recognized variables:
//
//	BOOKREVIEW_SERVER_URL  - API origin
//	BOOKREVIEW_TIMEOUT     - request timeout in seconds
//	BOOKREVIEW_DB          - sqlite file path
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BOOKREVIEW_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("BOOKREVIEW_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BOOKREVIEW_DB"); v != "" {
		cfg.DatabasePath = v
	}
}
