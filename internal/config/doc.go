// Package config loads rubrica settings from TOML and RUBRICA_* environment
// variables.
package config
