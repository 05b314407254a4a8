// Package config loads runtime configuration for the CobraGPT CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
// Durations accept strings like "500ms" or integer nanoseconds:
//
//	{
//	  "data_dir": "data",
//	  "database_name": "cobragpt.db",
//	  "auth_delay": "1s",
//	  "logout_delay": "500ms",
//	  "reply_delay": "1s",
//	  "log_level": "info"
//	}
package config
