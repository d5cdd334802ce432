// Package config loads, validates, and normalizes the converter's TOML
// configuration.
//
// Configuration is optional: every field has a default, and the CLI works
// without a config file. Lookup order is an explicit --config path, then
// ~/.config/subgrid/config.toml, then subgrid.toml in the working directory.
package config
