package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 {
		return errors.New("logging.max_size_mb must be zero or positive")
	}
	if c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_backups must be zero or positive")
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.SkipSeconds < 0 {
		return errors.New("playback.skip_seconds must be positive")
	}
	switch c.Playback.PrimaryTrack {
	case "english", "chinese":
	default:
		return fmt.Errorf("playback.primary_track must be \"english\" or \"chinese\", got %q", c.Playback.PrimaryTrack)
	}
	return nil
}
