// Package config loads and validates the service configuration. Values
// come from a config.yml, the process environment, and an optional .env
// file, with environment variables winning. Every section applies its
// own defaults except the signing secret, which must be set explicitly:
// validation fails at startup rather than running with a known key.
package config
