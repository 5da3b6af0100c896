// Package config loads and validates the YAML configuration.
//
// The config file describes the input CSV: its path, the currency symbol to
// strip from amount cells, the text encoding, and the column positions of
// the four consumed fields. ${VAR} references are expanded from the
// environment before parsing. Every field has a default, so running without
// a config file is supported.
package config
