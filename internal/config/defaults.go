package config

const (
	defaultDataDir       = "~/.local/share/bilingo"
	defaultLogDir        = "~/.local/share/bilingo/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultSkipSeconds   = 5.0
	defaultPrimaryTrack  = "english"
	defaultConfigPath    = "~/.config/bilingo/config.toml"
	projectConfigName    = "bilingo.toml"
	phrasesDBName        = "phrases.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Playback: Playback{
			SkipSeconds:       defaultSkipSeconds,
			StopAtSentenceEnd: false,
			PrimaryTrack:      defaultPrimaryTrack,
		},
		Ingest: Ingest{
			StripBOM: true,
		},
	}
}
