package session

import (
	"bilingo/internal/ingest"
	"bilingo/internal/playback"
	"bilingo/internal/subtitles"
)

// State is one immutable snapshot of a session.
type State struct {
	Video    *ingest.MediaReference
	Tracks   *ingest.TrackSet
	Time     float64
	Duration float64
	Playing  bool
	// Primary is the track that drives stop-at-sentence-end and replay.
	Primary subtitles.Track
	Stop    playback.Monitor
}

// New returns an empty session.
func New(primary subtitles.Track, stopAtSentenceEnd bool) State {
	return State{Primary: primary, Stop: playback.NewMonitor(stopAtSentenceEnd)}
}

// Bundle returns the video and tracks as the artifact playback consumes.
func (s State) Bundle() ingest.Bundle {
	return ingest.Bundle{Video: s.Video, Tracks: s.Tracks}
}

// Active returns the cues showing at the current time.
func (s State) Active() playback.Active {
	return playback.Lookup(s.Tracks, s.Time)
}

func (s State) primaryTrack() []subtitles.Cue {
	if s.Tracks == nil {
		return nil
	}
	return s.Tracks.Track(s.Primary)
}

func (s State) clone() State {
	out := s
	if s.Video != nil {
		video := *s.Video
		out.Video = &video
	}
	if s.Tracks != nil {
		tracks := s.Tracks.Clone()
		out.Tracks = &tracks
	}
	return out
}
