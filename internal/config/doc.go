// Package config loads runtime configuration for the Planvite CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Environment variables with the PLANVITE_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string    base URL of the backend REST API
//	-t int       request timeout (seconds)
//	-ttl int     token retention window (hours)
//	-d string    path of the local credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "token_ttl": "24h",
//	  "database_path": "planvite.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
