package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually set in the environment override earlier sources.
type envConfig struct {
	BaseURL        *string        `env:"PLANVITE_BASE_URL"`
	RequestTimeout *time.Duration `env:"PLANVITE_REQUEST_TIMEOUT"`
	TokenTTL       *time.Duration `env:"PLANVITE_TOKEN_TTL"`
	DatabasePath   *string        `env:"PLANVITE_DATABASE_PATH"`
}

// parseEnv overlays Config with values from PLANVITE_* environment
// variables. Durations use Go syntax, e.g. PLANVITE_TOKEN_TTL=24h.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != nil {
		cfg.BaseURL = *ec.BaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.TokenTTL != nil {
		cfg.TokenTTL = *ec.TokenTTL
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
}
