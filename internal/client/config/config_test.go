package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "bookreview.db", cfg.DatabasePath)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("BOOKREVIEW_SERVER_URL", "http://example.test:9000")
	t.Setenv("BOOKREVIEW_TIMEOUT", "30")
	t.Setenv("BOOKREVIEW_DB", "alt.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://example.test:9000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alt.db", cfg.DatabasePath)
}

func TestParseEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("BOOKREVIEW_TIMEOUT", "notanumber")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_DefaultsWithoutArgs(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cli"}

	cfg := LoadConfig()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerBaseURL)
	assert.Equal(t, "bookreview.db", cfg.DatabasePath)
}
