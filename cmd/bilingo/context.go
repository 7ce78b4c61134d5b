package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"bilingo/internal/config"
	"bilingo/internal/fileutil"
	"bilingo/internal/ingest"
	"bilingo/internal/logging"
	"bilingo/internal/subtitles"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	sessionID  string
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
		sessionID:   logging.NewSessionID(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// loggerValue builds the session logger on first use. Logger construction
// failures fall back to a no-op logger so commands still run.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		var extra []string
		if c.verboseFlag != nil && *c.verboseFlag {
			extra = append(extra, "stderr")
		}
		logger, err := logging.NewFromConfig(c.configValue(), c.sessionID, extra...)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) primaryTrack() subtitles.Track {
	cfg := c.configValue()
	if cfg == nil {
		return subtitles.TrackEnglish
	}
	track, err := subtitles.ParseTrack(cfg.Playback.PrimaryTrack)
	if err != nil {
		return subtitles.TrackEnglish
	}
	return track
}

func (c *commandContext) skipSeconds() float64 {
	if cfg := c.configValue(); cfg != nil && cfg.Playback.SkipSeconds > 0 {
		return cfg.Playback.SkipSeconds
	}
	return config.Default().Playback.SkipSeconds
}

func (c *commandContext) newEngine() *ingest.Engine {
	return ingest.NewEngine(ingest.WithLogger(c.loggerValue()))
}

func (c *commandContext) readText(ctx context.Context, path string) (string, error) {
	var opts []fileutil.ReadOption
	if cfg := c.configValue(); cfg != nil && !cfg.Ingest.StripBOM {
		opts = append(opts, fileutil.KeepBOM())
	}
	return fileutil.ReadText(ctx, path, opts...)
}

func (c *commandContext) newDispatcher() *ingest.Dispatcher {
	return ingest.NewDispatcher(c.newEngine(), c.readText, c.loggerValue())
}

// loadBundle applies paths in order and returns the resulting bundle. Skipped
// files are reported on stderr rather than failing the command.
func (c *commandContext) loadBundle(cmd *cobra.Command, paths []string) (ingest.Result, error) {
	refs, err := mediaReferences(paths)
	if err != nil {
		return ingest.Result{}, err
	}
	ctx := logging.WithOperation(cmd.Context(), cmd.Name())
	result, err := c.newDispatcher().Apply(ctx, ingest.Bundle{}, refs...)
	if err != nil {
		if !errors.Is(err, ingest.ErrUnsupportedFile) {
			return result, err
		}
		colorize := shouldColorize(cmd.ErrOrStderr())
		for _, step := range result.Steps {
			if step.Kind == ingest.KindUnknown {
				fmt.Fprintln(cmd.ErrOrStderr(), renderStatusLine(step.File.Name, statusWarn, "unsupported file type, skipped", colorize))
			}
		}
	}
	return result, nil
}

func mediaReferences(paths []string) ([]ingest.MediaReference, error) {
	refs := make([]ingest.MediaReference, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		refs = append(refs, ingest.MediaReference{
			Name:     filepath.Base(abs),
			Locator:  abs,
			MIMEType: mime.TypeByExtension(filepath.Ext(abs)),
		})
	}
	return refs, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
