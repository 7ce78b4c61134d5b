// Package config loads, normalizes, and validates bilingo configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// BILINGO_LOG_LEVEL and BILINGO_DATA_DIR. The Config type centralizes the
// knobs the CLI needs: where saved phrases and logs live, how logs are
// written, and playback preferences used by lookup and replay helpers.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
