// Package config loads, normalizes, and validates Kiro configuration data.
//
// It supplies repository defaults (including desktop auto-detection), expands
// user paths with tilde shortcuts, and reads the optional TOML file at
// ~/.config/kiro/config.toml. CLI flags override file values; both funnel
// through normalization so downstream code always sees absolute paths and
// canonical log settings.
package config
