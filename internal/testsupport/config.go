package testsupport

import (
	"path/filepath"
	"testing"

	"bilingo/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStopAtSentenceEnd enables automatic pausing at cue boundaries.
func WithStopAtSentenceEnd() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Playback.StopAtSentenceEnd = true
	}
}

// WithPrimaryTrack overrides the track that drives replay and stop decisions.
func WithPrimaryTrack(track string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Playback.PrimaryTrack = track
	}
}

// WithoutLogDir disables the rotating log file.
func WithoutLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
