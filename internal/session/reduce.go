package session

import (
	"bilingo/internal/ingest"
	"bilingo/internal/playback"
)

// Action is a request to change session state.
type Action interface {
	action()
}

// LoadVideo replaces the video reference. Duration is in seconds; zero means
// unknown.
type LoadVideo struct {
	Video    ingest.MediaReference
	Duration float64
}

// IngestSubtitle installs a TrackSet produced by the ingest engine.
type IngestSubtitle struct {
	Tracks ingest.TrackSet
}

// Tick advances the playback clock to Time.
type Tick struct {
	Time float64
}

// Seek jumps to Time.
type Seek struct {
	Time float64
}

// SkipBy moves the clock by Delta seconds.
type SkipBy struct {
	Delta float64
}

// SetPlaying starts or pauses playback.
type SetPlaying struct {
	Playing bool
}

// ReplaySentence seeks to the start of the current or most recent cue on the
// primary track and starts playback.
type ReplaySentence struct{}

// SetStopAtSentenceEnd toggles automatic pausing at cue boundaries.
type SetStopAtSentenceEnd struct {
	Enabled bool
}

// Reset clears video, tracks, and clock while keeping preferences.
type Reset struct{}

func (LoadVideo) action()            {}
func (IngestSubtitle) action()       {}
func (Tick) action()                 {}
func (Seek) action()                 {}
func (SkipBy) action()               {}
func (SetPlaying) action()           {}
func (ReplaySentence) action()       {}
func (SetStopAtSentenceEnd) action() {}
func (Reset) action()                {}

// Reduce returns the state that results from applying a to s. It never
// modifies s.
func Reduce(s State, a Action) State {
	next := s
	switch a := a.(type) {
	case LoadVideo:
		video := a.Video
		next.Video = &video
		next.Duration = a.Duration
		next.Time = playback.Skip(0, next.Time, next.Duration)
	case IngestSubtitle:
		tracks := a.Tracks.Clone()
		next.Tracks = &tracks
		next.Stop = next.Stop.Rearm(next.primaryTrack(), next.Time)
	case Tick:
		next.Time = playback.Skip(0, a.Time, next.Duration)
		var stop bool
		next.Stop, stop = next.Stop.Tick(next.primaryTrack(), next.Time, next.Playing)
		if stop {
			next.Playing = false
		}
	case Seek:
		next.Time = playback.Skip(0, a.Time, next.Duration)
		next.Stop = next.Stop.Rearm(next.primaryTrack(), next.Time)
	case SkipBy:
		next.Time = playback.Skip(next.Time, a.Delta, next.Duration)
		next.Stop = next.Stop.Rearm(next.primaryTrack(), next.Time)
	case SetPlaying:
		if a.Playing && !next.Playing {
			next.Stop = next.Stop.Rearm(next.primaryTrack(), next.Time)
		}
		next.Playing = a.Playing
	case ReplaySentence:
		target, ok := playback.ReplayTarget(next.primaryTrack(), next.Time)
		if !ok {
			return next
		}
		next.Time = target.Start
		next.Playing = true
		next.Stop = next.Stop.Rearm(next.primaryTrack(), next.Time)
	case SetStopAtSentenceEnd:
		next.Stop = next.Stop.WithEnabled(a.Enabled, next.primaryTrack(), next.Time)
	case Reset:
		next = New(s.Primary, s.Stop.Enabled)
	}
	return next
}
