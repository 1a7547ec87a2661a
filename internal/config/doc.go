// Package config loads the application configuration from environment
// variables, command-line flags and an optional JSON file, merges the
// sources with first-non-zero-wins semantics, and validates the result
// before the server starts.
package config
