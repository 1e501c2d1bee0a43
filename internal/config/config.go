package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// Config holds all runtime configuration for the lhcdata tool.
type Config struct {
	BaseURL   string // where the archives are published
	TimeoutMs int    // whole-transfer HTTP timeout; 0 means no limit
	DBPath    string // manifest database; empty means the per-user default
	Log       bool   // emit fetch telemetry to stderr
}

// DefaultConfig returns a Config with sensible defaults.
// Transfers carry no deadline by default.
func DefaultConfig() Config {
	return Config{
		BaseURL:   domain.DefaultBaseURL,
		TimeoutMs: 0,
		DBPath:    "",
		Log:       false,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LHCDATA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LHCDATA_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LHCDATA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LHCDATA_LOG"); v != "" {
		cfg.Log, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Timeout returns the transfer deadline; zero disables it.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
