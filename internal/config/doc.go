// Package config provides configuration management for mbzcue.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Browser-like User-Agent, 30 second fetch timeout,
//	// "Various Artists" performer, debug output disabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if the file doesn't exist
//	}
//
// Command-line flags are applied on top of the loaded settings by the
// entry points, so the precedence is flags > config file > defaults.
// The debug level lives here rather than in a package-level variable;
// it is threaded from Settings into the progress reporting at
// construction time.
package config
