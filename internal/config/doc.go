// Package config loads, normalizes, and validates cinescope configuration.
//
// It supplies repository defaults, reads an optional TOML file, and honours
// the CINESCOPE_LOG_LEVEL environment override. Besides logging and analysis
// knobs the file may declare extra false-color profiles; ProfileSet merges
// them with the built-in camera conventions so the server and CLI share one
// registry.
package config
