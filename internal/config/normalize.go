package config

import (
	"fmt"
	"os"
	"strings"

	"bilingo/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizePlayback()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("BILINGO_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = value
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("BILINGO_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

func (c *Config) normalizePlayback() {
	c.Playback.PrimaryTrack = strings.ToLower(strings.TrimSpace(c.Playback.PrimaryTrack))
	if c.Playback.PrimaryTrack == "" {
		c.Playback.PrimaryTrack = defaultPrimaryTrack
	}
	if v, err := language.Parse(c.Playback.PrimaryTrack); err == nil {
		c.Playback.PrimaryTrack = string(v)
	}
	if c.Playback.SkipSeconds == 0 {
		c.Playback.SkipSeconds = defaultSkipSeconds
	}
}
