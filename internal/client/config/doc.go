// Package config loads runtime configuration for the StudyKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-u string   URL of the remote endpoint (Apps Script web app /exec URL)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "endpoint_url": "https://script.google.com/macros/s/.../exec",
//	  "log_level": "debug"
//	}
//
// Keys missing from the file keep their previous value.
//
// Note: This package does not read environment variables; use the JSON file
// or flags. Library packages never read configuration themselves: the
// endpoint is passed to client.NewHTTPClient explicitly.
package config
