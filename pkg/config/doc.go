// Package config loads barfmt settings. Sources are layered with koanf, each
// overriding the previous one: embedded defaults, the user config file
// (TOML or YAML), BARFMT_* environment variables and explicit overrides such
// as command-line flags.
package config
