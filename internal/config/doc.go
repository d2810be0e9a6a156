// Package config loads and validates the TOML configuration, applying
// defaults and path expansion. CLI flags take precedence over file values;
// that merge happens in the run command, not here.
package config
