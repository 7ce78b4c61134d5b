package ingest

import (
	"bilingo/internal/language"
	"bilingo/internal/subtitles"
)

// Missing names the language still absent from a TrackSet.
type Missing string

const (
	MissingNone    Missing = ""
	MissingChinese Missing = "chinese"
	MissingEnglish Missing = "english"
)

func (m Missing) String() string {
	if m == MissingNone {
		return "none"
	}
	return string(m)
}

// Verdict returns the monolingual verdict matching m, or Unknown for MissingNone.
func (m Missing) Verdict() language.Verdict {
	switch m {
	case MissingChinese:
		return language.Chinese
	case MissingEnglish:
		return language.English
	default:
		return language.Unknown
	}
}

// TrackSet is the accumulated result of one or more subtitle uploads. It is
// replaced wholesale on every ingestion and never modified in place.
type TrackSet struct {
	Raw      []subtitles.Cue  `json:"raw"`
	Chinese  []subtitles.Cue  `json:"chinese"`
	English  []subtitles.Cue  `json:"english"`
	Detected language.Verdict `json:"detected"`
	Missing  Missing          `json:"missing,omitempty"`
}

// Complete reports whether both languages are present.
func (s TrackSet) Complete() bool {
	return s.Missing == MissingNone
}

// Track returns the cues of one monolingual track.
func (s TrackSet) Track(track subtitles.Track) []subtitles.Cue {
	if track == subtitles.TrackEnglish {
		return s.English
	}
	return s.Chinese
}

// Clone returns a deep copy whose slices do not alias s.
func (s TrackSet) Clone() TrackSet {
	return TrackSet{
		Raw:      subtitles.Clone(s.Raw),
		Chinese:  subtitles.Clone(s.Chinese),
		English:  subtitles.Clone(s.English),
		Detected: s.Detected,
		Missing:  s.Missing,
	}
}

// MediaReference identifies a video without interpreting it.
type MediaReference struct {
	Name     string `json:"name"`
	Locator  string `json:"locator"`
	MIMEType string `json:"mime_type,omitempty"`
}

// Bundle is the artifact handed to playback: the video and the tracks are
// tracked independently and either may be absent.
type Bundle struct {
	Video  *MediaReference `json:"video,omitempty"`
	Tracks *TrackSet       `json:"tracks,omitempty"`
}

// Ready reports whether the bundle has a video and a complete bilingual set.
func (b Bundle) Ready() bool {
	return b.Video != nil && b.Tracks != nil && b.Tracks.Complete()
}

// SubtitleFile is one uploaded subtitle with its text already read.
type SubtitleFile struct {
	Name     string
	MIMEType string
	Text     string
}
