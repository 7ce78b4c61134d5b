package ingest

import (
	"log/slog"
	"strings"

	"bilingo/internal/language"
	"bilingo/internal/logging"
	"bilingo/internal/subtitles"
)

// Mode names the transition applied by an ingestion.
type Mode string

const (
	// ModeFresh replaces the set based only on the new file.
	ModeFresh Mode = "fresh"
	// ModeMerge fills the missing language of a partial set.
	ModeMerge Mode = "merge"
	// ModeReplace discards a partial set because the new file carries the
	// language that was already present.
	ModeReplace Mode = "replace"
)

// Outcome describes one ingestion.
type Outcome struct {
	Tracks         TrackSet
	Mode           Mode
	Classification language.Result
}

// Engine parses, classifies, and merges subtitle uploads.
type Engine struct {
	classifier language.Classifier
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier overrides the language classifier.
func WithClassifier(c language.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine builds an engine using the heuristic classifier unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{classifier: language.HeuristicClassifier{}}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "ingest")
	return e
}

// Parse decodes file text with the ASS parser for .ass names and the SRT
// parser otherwise.
func (e *Engine) Parse(file SubtitleFile) []subtitles.Cue {
	if isASS(file.Name) {
		return subtitles.ParseASS(file.Text)
	}
	return subtitles.ParseSRT(file.Text)
}

// Ingest applies file to prev and returns the replacement TrackSet. prev may
// be nil. The slices of prev are never modified.
func (e *Engine) Ingest(prev *TrackSet, file SubtitleFile) TrackSet {
	return e.Apply(prev, file).Tracks
}

// Apply is Ingest with the decision details exposed.
func (e *Engine) Apply(prev *TrackSet, file SubtitleFile) Outcome {
	logger := e.logger.With(logging.String(logging.FieldFile, file.Name))

	cues := e.Parse(file)
	if findings := subtitles.Audit(cues); len(findings) > 0 {
		logging.WarnWithContext(logger, "subtitle file has anomalies", "subtitle_audit",
			logging.Alert("subtitle_anomaly"),
			logging.String("findings", strings.Join(findings, "; ")),
			logging.String(logging.FieldErrorHint, "check the file timing and numbering"),
		)
	}

	result := e.classifier.Classify(cues)
	logger.Debug("subtitle classified",
		logging.String(logging.FieldVerdict, result.Verdict.String()),
		logging.Int(logging.FieldCueCount, result.Stats.Total),
		logging.Group("stats",
			logging.Int("chinese_only", result.Stats.ChineseOnly),
			logging.Int("english_only", result.Stats.EnglishOnly),
			logging.Int("bilingual", result.Stats.Bilingual),
		),
		logging.String("reason", result.Reason),
	)

	var (
		tracks TrackSet
		mode   Mode
		reason string
	)
	switch {
	case prev == nil:
		tracks, mode, reason = fresh(cues, result.Verdict), ModeFresh, "no_prior_set"
	case prev.Complete():
		tracks, mode, reason = fresh(cues, result.Verdict), ModeFresh, "prior_set_complete"
	default:
		tracks, mode, reason = transition(*prev, cues, result.Verdict)
	}

	logger.Info("subtitle tracks updated", logging.Args(append(
		logging.DecisionAttrs("ingest_mode", string(mode), reason),
		logging.String(logging.FieldVerdict, result.Verdict.String()),
		logging.Int("chinese_cues", len(tracks.Chinese)),
		logging.Int("english_cues", len(tracks.English)),
		logging.String("missing", tracks.Missing.String()),
	)...)...)

	return Outcome{Tracks: tracks, Mode: mode, Classification: result}
}

// fresh builds a set from cues alone.
func fresh(cues []subtitles.Cue, verdict language.Verdict) TrackSet {
	set := TrackSet{Raw: subtitles.Clone(cues), Detected: verdict}
	switch verdict {
	case language.Bilingual:
		set.Chinese, set.English = subtitles.Separate(cues)
	case language.Chinese:
		set.Chinese = subtitles.Clone(cues)
		set.English = []subtitles.Cue{}
		set.Missing = MissingEnglish
	case language.English:
		set.English = subtitles.Clone(cues)
		set.Chinese = []subtitles.Cue{}
		set.Missing = MissingChinese
	default:
		set.Chinese, set.English = subtitles.Separate(cues)
		switch {
		case len(set.Chinese) == 0:
			set.Missing = MissingChinese
		case len(set.English) == 0:
			set.Missing = MissingEnglish
		}
	}
	return set
}

// transition handles an upload against a partial set.
func transition(prev TrackSet, cues []subtitles.Cue, verdict language.Verdict) (TrackSet, Mode, string) {
	target := prev.Missing.Verdict()
	if target == language.Unknown {
		return fresh(cues, verdict), ModeFresh, "prior_set_invalid"
	}
	present := target.Other()

	switch verdict {
	case target:
		return merge(prev, cues, cues), ModeMerge, "target_language_upload"
	case language.Bilingual:
		chinese, english := subtitles.Separate(cues)
		half := chinese
		if target == language.English {
			half = english
		}
		return merge(prev, cues, half), ModeMerge, "bilingual_upload_fills_target"
	case present:
		return fresh(cues, verdict), ModeReplace, "present_language_reupload"
	default:
		return fresh(cues, verdict), ModeFresh, "unclassified_upload"
	}
}

// merge appends raw and installs fill as the missing track of prev.
func merge(prev TrackSet, raw, fill []subtitles.Cue) TrackSet {
	set := TrackSet{
		Raw:      make([]subtitles.Cue, 0, len(prev.Raw)+len(raw)),
		Chinese:  subtitles.Clone(prev.Chinese),
		English:  subtitles.Clone(prev.English),
		Detected: language.Bilingual,
		Missing:  MissingNone,
	}
	set.Raw = append(set.Raw, prev.Raw...)
	set.Raw = append(set.Raw, raw...)
	if prev.Missing == MissingChinese {
		set.Chinese = subtitles.Clone(fill)
	} else {
		set.English = subtitles.Clone(fill)
	}
	return set
}
