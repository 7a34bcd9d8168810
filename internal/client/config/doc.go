// Package config loads runtime configuration for the community client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. CAPCHECK_* environment variables.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "base_url": "https://capcheck.onrender.com",
//	  "db_path": "community.db",
//	  "default_user_id": "1",
//	  "compression_quality": 0.7,
//	  "keep_feed_on_error": false,
//	  "request_timeout": "0s",
//	  "online_check_interval": "30s",
//	  "log_level": "info"
//	}
//
// Environment variable names are the upper-cased JSON keys prefixed with
// CAPCHECK_, e.g. CAPCHECK_BASE_URL.
package config
