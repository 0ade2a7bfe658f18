package config

import (
	"encoding/json"
	"os"

	"github.com/danakir/planvite/internal/flagx"
	"github.com/danakir/planvite/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, set values are copied into the
// runtime Config.
type JSONConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	TokenTTL       timex.Duration `json:"token_ttl"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the config; panics on read or
// unmarshal errors (caller should recover if desired).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
