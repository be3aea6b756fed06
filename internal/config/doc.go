// Package config loads, normalizes, and validates flowline configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files strictly, and converts the raw output
// selection tables into the selection package's spec types. Always obtain
// settings through this package so downstream code receives sanitized
// paths and validated overwrite modes.
package config
