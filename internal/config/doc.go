// Package config loads and validates the sidesplit TOML configuration.
//
// Configuration is optional: every field has a default, so the tool works
// without a config file. Load resolves the file (explicit path, then
// ~/.config/sidesplit/config.toml, then ./sidesplit.toml), decodes it,
// expands ~ in path fields, and validates the result.
package config
