// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged through a builder: each source contributes only the
// fields it actually sets, earlier sources win, and built-in defaults fill
// whatever remains. The merged result is validated before use; a missing
// token sign key or database DSN is a fatal configuration error.
package config
