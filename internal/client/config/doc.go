// Package config loads runtime configuration for the my-space CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   path to the session database file
//	-n int      notification auto-dismiss interval (seconds)
//	-l bool     simulate per-operation repository latency
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "session_db_path": "myspace.db",
//	  "notification_ttl": "3s",
//	  "token_validity_duration": "24h",
//	  "simulate_latency": true
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
