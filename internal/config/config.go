package config

import "time"

// Config holds runtime settings for the Planvite CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenTTL: retention window of the durable token slot written on login.
//   - DatabasePath: path of the local SQLite file holding the slot.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	TokenTTL       time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.TokenTTL = 24 * time.Hour
	c.DatabasePath = "planvite.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
